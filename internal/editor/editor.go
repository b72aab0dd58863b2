package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeno-editor/zeno/internal/buffer"
	"github.com/zeno-editor/zeno/internal/display"
	"github.com/zeno-editor/zeno/internal/key"
	"github.com/zeno-editor/zeno/internal/logging"
	"github.com/zeno-editor/zeno/internal/mode"
)

// Errors returned by editor operations.
var (
	ErrUnknownMode    = errors.New("unknown mode")
	ErrNoActiveWindow = errors.New("no active window")
	ErrUnknownBuffer  = errors.New("unknown buffer")
)

// Editor coordinates one editing session: it owns the buffer arena, the
// registered modes, the single active global mode, the active window and
// the display region. Buffers and windows never outlive their editor.
type Editor struct {
	root         string
	modes        map[string]mode.Mode
	globalMode   mode.Mode
	buffers      map[BufferID]*buffer.Buffer
	nextBufferID BufferID
	activeWindow *Window
	region       display.Region
	disp         display.Display
	log          *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithDisplay sets the display adapter. Defaults to display.NewNull().
func WithDisplay(d display.Display) Option {
	return func(e *Editor) {
		e.disp = d
	}
}

// WithLogger sets the session logger. Defaults to logging.Null.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		e.log = l
	}
}

// New creates an editor rooted at the given path. An empty root defaults
// to the current working context; a root that is not an existing
// directory is a construction failure.
func New(root string, opts ...Option) (*Editor, error) {
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("editor root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("editor root %q: not a directory", root)
	}

	e := &Editor{
		root:         root,
		modes:        make(map[string]mode.Mode),
		buffers:      make(map[BufferID]*buffer.Buffer),
		nextBufferID: 1,
		disp:         display.NewNull(),
		log:          logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Root returns the editor's root path.
func (e *Editor) Root() string {
	return e.root
}

// RegisterMode adds a mode to the registry, keyed by its name. The first
// registered mode becomes the global mode until SetGlobalMode replaces it.
func (e *Editor) RegisterMode(m mode.Mode) {
	e.modes[m.Name()] = m
	if e.globalMode == nil {
		e.globalMode = m
	}
}

// SetGlobalMode activates the registered mode with the given name.
// Re-activating the current mode is a no-op; switching to a different
// mode resets the outgoing mode's pending state.
func (e *Editor) SetGlobalMode(name string) error {
	m, ok := e.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	if e.globalMode == m {
		return nil
	}
	if e.globalMode != nil {
		e.globalMode.Reset()
	}
	e.globalMode = m
	e.log.Debug("global mode set to %s", name)
	return nil
}

// GlobalMode returns the active global mode. It is never nil once a mode
// has been registered.
func (e *Editor) GlobalMode() mode.Mode {
	return e.globalMode
}

// InitWithText creates a buffer with the given name and content, places
// it in the arena, wraps it in a fresh window and makes that window
// active. It returns the new buffer's ID.
func (e *Editor) InitWithText(name, text string) BufferID {
	buf := buffer.New(name, text)
	id := e.nextBufferID
	e.nextBufferID++
	e.buffers[id] = buf
	e.activeWindow = newWindow(id, buf)
	if e.globalMode != nil {
		e.globalMode.Reset()
	}
	e.log.Debug("buffer %d (%s) initialized, %d bytes", id, name, buf.Len())
	return id
}

// Buffer returns the arena entry for an ID, or nil.
func (e *Editor) Buffer(id BufferID) *buffer.Buffer {
	return e.buffers[id]
}

// BufferByName returns the first buffer with the given name, or nil.
// Names need not be unique; collisions are the caller's responsibility.
func (e *Editor) BufferByName(name string) *buffer.Buffer {
	for _, b := range e.buffers {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// BufferCount returns the number of open buffers.
func (e *Editor) BufferCount() int {
	return len(e.buffers)
}

// ActiveWindow returns the active window, or nil before the first
// InitWithText call.
func (e *Editor) ActiveWindow() *Window {
	return e.activeWindow
}

// DeliverKey dispatches one key event to the global mode against the
// buffer identified by id. Delivery requires the active window to target
// that buffer; without the pairing no mode is resolvable.
func (e *Editor) DeliverKey(id BufferID, ev key.Event) error {
	buf, ok := e.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, id)
	}
	w := e.activeWindow
	if w == nil || w.BufferID() != id {
		return ErrNoActiveWindow
	}
	if e.globalMode == nil {
		return ErrUnknownMode
	}

	ctx := &mode.Context{Buffer: buf, Cursor: w}
	if err := e.globalMode.HandleKey(ev, ctx); err != nil {
		return err
	}
	// A mutation may have shrunk the content under the cursor.
	w.Clamp()
	return nil
}

// CursorPosition resolves the active window's cursor for the buffer
// identified by id. The second return is false when the active window
// does not target that buffer.
func (e *Editor) CursorPosition(id BufferID) (buffer.Position, bool) {
	w := e.activeWindow
	if w == nil || w.BufferID() != id {
		return buffer.Position{}, false
	}
	return w.Position(), true
}

// SetDisplayRegion reconfigures the rectangle the editor renders into.
func (e *Editor) SetDisplayRegion(r display.Region) {
	e.region = r
}

// DisplayRegion returns the configured display rectangle.
func (e *Editor) DisplayRegion() display.Region {
	return e.region
}

// Display renders the current state through the display adapter. It is
// presentation-only: buffer, window and mode state are not touched.
func (e *Editor) Display() error {
	v := display.View{
		Region:   e.region,
		ModeName: e.modeDisplayName(),
	}
	if w := e.activeWindow; w != nil {
		v.Lines = w.Buffer().Lines()
		v.Cursor = w.Position()
		v.BufferName = w.Buffer().Name()
	}
	return e.disp.Render(v)
}

// modeDisplayName names the active mode, including the vim sub-mode.
func (e *Editor) modeDisplayName() string {
	if e.globalMode == nil {
		return ""
	}
	if v, ok := e.globalMode.(*mode.Vim); ok {
		return v.Name() + ":" + v.SubMode()
	}
	return e.globalMode.Name()
}
