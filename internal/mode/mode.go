package mode

import (
	"github.com/zeno-editor/zeno/internal/buffer"
	"github.com/zeno-editor/zeno/internal/key"
)

// Registered mode names. Exactly these two implementations exist; the
// editor selects the global mode by name lookup.
const (
	NameVim      = "vim"
	NameStandard = "standard"
)

// Mode is a pluggable key-interpretation strategy. A mode consumes one
// key event against a specific buffer/cursor pair, mutating the buffer
// and cursor as it sees fit, and advances its own internal sub-state.
//
// Key delivery is a single atomic call with no re-entrancy. A mode never
// references editor state beyond the Context it was invoked with.
type Mode interface {
	// Name returns the unique mode identifier used for registration
	// and global-mode selection.
	Name() string

	// HandleKey consumes one key event against the given context.
	// A key the mode chooses to ignore is not an error.
	HandleKey(ev key.Event, ctx *Context) error

	// Reset clears any pending internal state (count prefixes, pending
	// operators, sub-modes) back to the mode's initial condition.
	Reset()
}

// Cursor is the mutable cursor a mode drives during key handling.
// The editor's active window implements it.
type Cursor interface {
	// Offset returns the cursor's byte offset into the buffer.
	Offset() int

	// SetOffset moves the cursor. Implementations clamp to valid
	// positions for their buffer.
	SetOffset(offset int)
}

// Context carries the buffer/cursor pair for a single key delivery.
type Context struct {
	Buffer *buffer.Buffer
	Cursor Cursor
}

// position resolves the context cursor into line/column coordinates.
func (c *Context) position() buffer.Position {
	return c.Buffer.OffsetToPosition(c.Cursor.Offset())
}
