package embed

import (
	"github.com/zeno-editor/zeno/internal/display"
	"github.com/zeno-editor/zeno/internal/key"
	"github.com/zeno-editor/zeno/internal/mode"
)

// Create opens a new session rooted at root (empty means the current
// directory) and returns its handle, or InvalidHandle on failure.
// Settings come from zeno.toml under root plus ZENO_* environment
// overrides; a broken config never fails creation.
func Create(root string, opts ...Option) (h Handle) {
	defer func() {
		if recover() != nil {
			h = InvalidHandle
		}
	}()

	s, err := newSession(root, opts...)
	if err != nil {
		return InvalidHandle
	}
	h = register(s)
	s.log.Info("session created, root=%s", s.ed.Root())
	return h
}

// Destroy closes a session. Unknown handles are a no-op. Any later call
// with the destroyed handle is a caller error and yields sentinels.
func Destroy(h Handle) {
	defer func() { _ = recover() }()

	if s := unregister(h); s != nil {
		s.log.Info("session destroyed")
	}
}

// InitWithText creates a buffer holding text and makes it the session's
// current buffer and the editor's active window target. A prior current
// buffer stays in the arena but is no longer addressed by the shell.
// No-op when the handle is unknown or name is empty.
func InitWithText(h Handle, name, text string) {
	defer func() { _ = recover() }()

	s := lookup(h)
	if s == nil || name == "" {
		return
	}
	s.current = s.ed.InitWithText(name, text)
}

// GetText copies the current buffer's content into out, truncated to
// len(out)-1 bytes and always NUL-terminated when out is non-empty. The
// return value is the number of content bytes copied, excluding the
// terminator. Returns 0 when the handle or current buffer is absent or
// out is empty.
func GetText(h Handle, out []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	s := lookup(h)
	if s == nil || len(out) == 0 {
		return 0
	}
	buf := s.ed.Buffer(s.current)
	if buf == nil {
		return 0
	}

	text := buf.Text()
	n = min(len(text), len(out)-1)
	copy(out, text[:n])
	out[n] = 0
	return n
}

// GetTextLength returns the untruncated byte length of the current
// buffer's content, or 0 when unavailable.
func GetTextLength(h Handle) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	s := lookup(h)
	if s == nil {
		return 0
	}
	buf := s.ed.Buffer(s.current)
	if buf == nil {
		return 0
	}
	return buf.Len()
}

// SetVimMode switches the session's global mode to vim. Idempotent;
// no-op on an unknown handle.
func SetVimMode(h Handle) {
	SetMode(h, mode.NameVim)
}

// IsVimMode reports whether the active global mode is vim.
func IsVimMode(h Handle) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	s := lookup(h)
	if s == nil {
		return false
	}
	m := s.ed.GlobalMode()
	return m != nil && m.Name() == mode.NameVim
}

// SetMode switches the global mode by name and reports whether the
// switch took effect (an already-active mode counts as success).
func SetMode(h Handle, name string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	s := lookup(h)
	if s == nil {
		return false
	}
	if err := s.ed.SetGlobalMode(name); err != nil {
		s.log.Warn("mode switch rejected: %v", err)
		return false
	}
	return true
}

// ModeName returns the active global mode's name, or "" when the handle
// is unknown.
func ModeName(h Handle) (name string) {
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()

	s := lookup(h)
	if s == nil {
		return ""
	}
	m := s.ed.GlobalMode()
	if m == nil {
		return ""
	}
	return m.Name()
}

// HandleKey translates one raw key/modifier pair and dispatches it to
// the current buffer's active mode. True means the event was delivered,
// not that content changed; a key the mode ignores still returns true.
// False means the handle, current buffer, active window or mode could
// not be resolved, in which case nothing was touched.
func HandleKey(h Handle, rawKey, modifiers uint32) (delivered bool) {
	defer func() {
		if recover() != nil {
			delivered = false
		}
	}()

	s := lookup(h)
	if s == nil {
		return false
	}
	ev := key.Translate(rawKey, modifiers)
	if err := s.ed.DeliverKey(s.current, ev); err != nil {
		s.log.Debug("key not delivered: %v", err)
		return false
	}
	return true
}

// Display sets the editor's display region to the rectangle with origin
// (x, y) and the given extent, then renders through the display
// adapter. Presentation only: buffer, window and mode state are not
// mutated. No-op on an unknown handle.
func Display(h Handle, x, y, width, height float32) {
	defer func() { _ = recover() }()

	s := lookup(h)
	if s == nil {
		return
	}
	s.ed.SetDisplayRegion(display.Region{
		Min: display.Vec2{X: x, Y: y},
		Max: display.Vec2{X: x + width, Y: y + height},
	})
	if err := s.ed.Display(); err != nil {
		s.log.Warn("render failed: %v", err)
	}
}

// CursorPosition resolves the active window's cursor into a zero-based
// line and column (byte count from the line start). Returns (0, 0) when
// the handle is unknown or the active window does not target the
// current buffer.
func CursorPosition(h Handle) (line, column int32) {
	defer func() {
		if recover() != nil {
			line, column = 0, 0
		}
	}()

	s := lookup(h)
	if s == nil {
		return 0, 0
	}
	pos, ok := s.ed.CursorPosition(s.current)
	if !ok {
		return 0, 0
	}
	return int32(pos.Line), int32(pos.Column)
}
