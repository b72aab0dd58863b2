package buffer

import (
	"sort"
)

// Buffer owns the mutable text content of one document and answers
// offset/line queries against it.
//
// The line-start table is rebuilt on every mutation and always reflects
// the current content exactly: entry i is the byte offset of the first
// character of line i, and offset 0 is always a valid line start.
type Buffer struct {
	name       string
	content    []byte
	lineStarts []int
	revision   Revision
}

// New creates a buffer with the given name and initial text.
// Names are lookup keys for the owning editor; collisions are the
// caller's responsibility.
func New(name, text string) *Buffer {
	b := &Buffer{
		name:     name,
		content:  []byte(text),
		revision: NextRevision(),
	}
	b.reindex()
	return b
}

// Name returns the buffer's name.
func (b *Buffer) Name() string {
	return b.name
}

// Text returns a copy of the full buffer content.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Bytes returns the raw content. Callers must not mutate or retain the
// returned slice across buffer mutations.
func (b *Buffer) Bytes() []byte {
	return b.content
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// Revision returns the current revision. It changes on every mutation.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// Line returns the text of line i without its trailing newline.
// Out-of-range indexes return the empty string.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[i]
	end := b.lineEnd(i)
	return string(b.content[start:end])
}

// Lines returns every line of the buffer without trailing newlines.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lineStarts))
	for i := range b.lineStarts {
		lines[i] = b.Line(i)
	}
	return lines
}

// LineFromOffset returns the index i such that
// LineStart(i) <= offset < LineStart(i+1). The last line extends to
// Len() inclusive, so offset == Len() resolves to the last line.
// Offsets are clamped to the valid range.
func (b *Buffer) LineFromOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}
	// First line start strictly greater than offset, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return i - 1
}

// LineStart returns the byte offset of the first character of line i.
// Out-of-range indexes are clamped.
func (b *Buffer) LineStart(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(b.lineStarts) {
		i = len(b.lineStarts) - 1
	}
	return b.lineStarts[i]
}

// LineEnd returns the byte offset just past the last character of line i,
// excluding the newline.
func (b *Buffer) LineEnd(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(b.lineStarts) {
		i = len(b.lineStarts) - 1
	}
	return b.lineEnd(i)
}

// LineLen returns the length of line i in bytes, excluding the newline.
func (b *Buffer) LineLen(i int) int {
	return b.LineEnd(i) - b.LineStart(i)
}

// OffsetToPosition resolves a byte offset into zero-based (line, column)
// coordinates, with the column counted in bytes from the line start.
// offset == Len() resolves to the end of the last line; an empty buffer
// resolves to (0, 0).
func (b *Buffer) OffsetToPosition(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}
	line := b.LineFromOffset(offset)
	return Position{Line: line, Column: offset - b.lineStarts[line]}
}

// PositionToOffset converts (line, column) coordinates back into a byte
// offset, clamping the column to the line length.
func (b *Buffer) PositionToOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(b.lineStarts) {
		return len(b.content)
	}
	col := pos.Column
	if col < 0 {
		col = 0
	}
	if max := b.lineEnd(pos.Line) - b.lineStarts[pos.Line]; col > max {
		col = max
	}
	return b.lineStarts[pos.Line] + col
}

// lineEnd returns the end offset of line i, excluding the newline.
func (b *Buffer) lineEnd(i int) int {
	if i+1 < len(b.lineStarts) {
		return b.lineStarts[i+1] - 1
	}
	return len(b.content)
}

// reindex rebuilds the line-start table from the current content.
func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	if starts == nil {
		starts = make([]int, 0, 16)
	}
	starts = append(starts, 0)
	for i, c := range b.content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}
