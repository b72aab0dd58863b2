package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/zeno-editor/zeno/embed"
	"github.com/zeno-editor/zeno/internal/logging"
)

// Host runs Lua against one embedded session. The state is sandboxed:
// only the base, table, string and math libraries are opened, and the
// code-loading globals are removed.
//
// A Host is not goroutine-safe; like the session it drives, it belongs
// to a single goroutine.
type Host struct {
	L      *lua.LState
	handle embed.Handle
	log    *logging.Logger
	closed bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithLogger sets the logger for script diagnostics.
func WithLogger(l *logging.Logger) HostOption {
	return func(h *Host) {
		h.log = l
	}
}

// NewHost creates a sandboxed script host bound to the given session.
func NewHost(handle embed.Handle, opts ...HostOption) *Host {
	h := &Host{
		handle: handle,
		log:    logging.Null,
	}
	for _, opt := range opts {
		opt(h)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	removeLoaders(L)
	h.L = L

	h.installAPI()
	return h
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	// io, os, debug and package stay closed: scripts drive the editor,
	// nothing else.
}

func removeLoaders(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installAPI publishes the zeno table.
func (h *Host) installAPI() {
	tbl := h.L.NewTable()
	h.L.SetFuncs(tbl, map[string]lua.LGFunction{
		"init_with_text": h.luaInitWithText,
		"send_keys":      h.luaSendKeys,
		"send_key":       h.luaSendKey,
		"text":           h.luaText,
		"length":         h.luaLength,
		"cursor":         h.luaCursor,
		"set_mode":       h.luaSetMode,
		"mode":           h.luaMode,
	})
	h.L.SetGlobal("zeno", tbl)
}

// RunString executes a chunk of Lua source.
func (h *Host) RunString(src string) error {
	if h.closed {
		return fmt.Errorf("script host closed")
	}
	if err := h.L.DoString(src); err != nil {
		h.log.Warn("script error: %v", err)
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// RunFile executes a Lua file.
func (h *Host) RunFile(path string) error {
	if h.closed {
		return fmt.Errorf("script host closed")
	}
	if err := h.L.DoFile(path); err != nil {
		h.log.Warn("script error in %s: %v", path, err)
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state. Safe to call more than once.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// zeno.init_with_text(name, text)
func (h *Host) luaInitWithText(L *lua.LState) int {
	name := L.CheckString(1)
	text := L.CheckString(2)
	embed.InitWithText(h.handle, name, text)
	return 0
}

// zeno.send_keys(s) -> delivered count
// Each rune of s is delivered as an unmodified literal key.
func (h *Host) luaSendKeys(L *lua.LState) int {
	s := L.CheckString(1)
	delivered := 0
	for _, r := range s {
		if embed.HandleKey(h.handle, uint32(r), 0) {
			delivered++
		}
	}
	L.Push(lua.LNumber(delivered))
	return 1
}

// zeno.send_key(code, modifiers) -> bool
// Raw wire form: code 1000-1003 for arrows, modifier bits Ctrl=1,
// Alt=2, Shift=4.
func (h *Host) luaSendKey(L *lua.LState) int {
	code := L.CheckInt(1)
	mods := L.OptInt(2, 0)
	if code < 0 || mods < 0 {
		L.Push(lua.LFalse)
		return 1
	}
	ok := embed.HandleKey(h.handle, uint32(code), uint32(mods))
	L.Push(lua.LBool(ok))
	return 1
}

// zeno.text() -> string
func (h *Host) luaText(L *lua.LState) int {
	n := embed.GetTextLength(h.handle)
	out := make([]byte, n+1)
	copied := embed.GetText(h.handle, out)
	L.Push(lua.LString(out[:copied]))
	return 1
}

// zeno.length() -> number
func (h *Host) luaLength(L *lua.LState) int {
	L.Push(lua.LNumber(embed.GetTextLength(h.handle)))
	return 1
}

// zeno.cursor() -> line, column (zero-based)
func (h *Host) luaCursor(L *lua.LState) int {
	line, col := embed.CursorPosition(h.handle)
	L.Push(lua.LNumber(line))
	L.Push(lua.LNumber(col))
	return 2
}

// zeno.set_mode(name) -> bool
func (h *Host) luaSetMode(L *lua.LState) int {
	name := L.CheckString(1)
	L.Push(lua.LBool(embed.SetMode(h.handle, name)))
	return 1
}

// zeno.mode() -> string
func (h *Host) luaMode(L *lua.LState) int {
	L.Push(lua.LString(embed.ModeName(h.handle)))
	return 1
}
