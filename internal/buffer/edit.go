package buffer

import "errors"

// Errors returned by buffer mutations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Insert inserts text at the given byte offset and returns the offset
// just past the inserted text.
func (b *Buffer) Insert(offset int, text string) (int, error) {
	if offset < 0 || offset > len(b.content) {
		return 0, ErrOffsetOutOfRange
	}
	if text == "" {
		return offset, nil
	}

	updated := make([]byte, 0, len(b.content)+len(text))
	updated = append(updated, b.content[:offset]...)
	updated = append(updated, text...)
	updated = append(updated, b.content[offset:]...)
	b.content = updated

	b.reindex()
	b.revision = NextRevision()
	return offset + len(text), nil
}

// Delete removes the bytes in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if start < 0 || start > end || end > len(b.content) {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	b.content = append(b.content[:start], b.content[end:]...)
	b.reindex()
	b.revision = NextRevision()
	return nil
}

// Replace substitutes the bytes in [start, end) with text and returns
// the offset just past the replacement.
func (b *Buffer) Replace(start, end int, text string) (int, error) {
	if start < 0 || start > end || end > len(b.content) {
		return 0, ErrRangeInvalid
	}

	updated := make([]byte, 0, len(b.content)-(end-start)+len(text))
	updated = append(updated, b.content[:start]...)
	updated = append(updated, text...)
	updated = append(updated, b.content[end:]...)
	b.content = updated

	b.reindex()
	b.revision = NextRevision()
	return start + len(text), nil
}

// SetText replaces the entire content.
func (b *Buffer) SetText(text string) {
	b.content = []byte(text)
	b.reindex()
	b.revision = NextRevision()
}

// TextRange returns a copy of the bytes in [start, end), clamped to the
// content bounds.
func (b *Buffer) TextRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(b.content) {
		end = len(b.content)
	}
	if start >= end {
		return ""
	}
	return string(b.content[start:end])
}

// DeleteLine removes line i including its trailing newline, or the
// preceding newline when removing the last line.
func (b *Buffer) DeleteLine(i int) error {
	if i < 0 || i >= len(b.lineStarts) {
		return ErrRangeInvalid
	}

	start := b.lineStarts[i]
	end := b.lineEnd(i)
	if end < len(b.content) {
		end++ // take the newline with the line
	} else if start > 0 {
		start-- // last line: take the preceding newline instead
	}
	return b.Delete(start, end)
}
