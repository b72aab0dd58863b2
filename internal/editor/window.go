package editor

import "github.com/zeno-editor/zeno/internal/buffer"

// BufferID is a stable handle into the editor's buffer arena. Windows
// hold BufferIDs, never the buffers themselves.
type BufferID uint64

// InvalidBuffer is the zero BufferID; it never names a real buffer.
const InvalidBuffer BufferID = 0

// Window pairs one buffer with a viewport and holds the authoritative
// cursor offset for that pairing. The buffer reference is non-owning:
// the editor arena owns every buffer.
type Window struct {
	id     BufferID
	buf    *buffer.Buffer
	cursor int
}

// newWindow creates a window over the given arena entry with the cursor
// at offset 0.
func newWindow(id BufferID, buf *buffer.Buffer) *Window {
	return &Window{id: id, buf: buf}
}

// BufferID returns the ID of the displayed buffer.
func (w *Window) BufferID() BufferID {
	return w.id
}

// Buffer returns the displayed buffer.
func (w *Window) Buffer() *buffer.Buffer {
	return w.buf
}

// Offset returns the cursor's byte offset into the buffer.
func (w *Window) Offset() int {
	return w.cursor
}

// SetOffset moves the cursor, clamped to [0, buffer length].
func (w *Window) SetOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if max := w.buf.Len(); offset > max {
		offset = max
	}
	w.cursor = offset
}

// Clamp re-validates the cursor against the current buffer length.
// Called after mutations that may have shrunk the content.
func (w *Window) Clamp() {
	w.SetOffset(w.cursor)
}

// Position resolves the cursor offset into line/column coordinates.
func (w *Window) Position() buffer.Position {
	return w.buf.OffsetToPosition(w.cursor)
}
