package editor

import (
	"errors"
	"testing"

	"github.com/zeno-editor/zeno/internal/display"
	"github.com/zeno-editor/zeno/internal/key"
	"github.com/zeno-editor/zeno/internal/mode"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.RegisterMode(mode.NewVim())
	e.RegisterMode(mode.NewStandard())
	return e
}

func TestNewValidatesRoot(t *testing.T) {
	if _, err := New("/definitely/not/a/path"); err == nil {
		t.Error("New with a missing root should fail")
	}

	e, err := New("")
	if err != nil {
		t.Fatalf("New with empty root: %v", err)
	}
	if e.Root() != "." {
		t.Errorf("Root() = %q, want %q", e.Root(), ".")
	}
}

func TestModeRegistration(t *testing.T) {
	e := newTestEditor(t)

	// First registered mode is the initial global mode.
	if e.GlobalMode() == nil || e.GlobalMode().Name() != mode.NameVim {
		t.Fatalf("GlobalMode() = %v, want vim", e.GlobalMode())
	}

	if err := e.SetGlobalMode(mode.NameStandard); err != nil {
		t.Fatalf("SetGlobalMode: %v", err)
	}
	if e.GlobalMode().Name() != mode.NameStandard {
		t.Errorf("GlobalMode() = %q, want standard", e.GlobalMode().Name())
	}

	if err := e.SetGlobalMode("nonsense"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("SetGlobalMode(nonsense) error = %v, want ErrUnknownMode", err)
	}
	// Failed switch leaves the mode unchanged.
	if e.GlobalMode().Name() != mode.NameStandard {
		t.Errorf("GlobalMode() changed after failed switch")
	}
}

func TestSetGlobalModeResetsOutgoingState(t *testing.T) {
	e := newTestEditor(t)
	id := e.InitWithText("a", "text")

	// Put vim into insert state, then switch away and back.
	if err := e.DeliverKey(id, key.NewRuneEvent('i', key.ModNone)); err != nil {
		t.Fatalf("DeliverKey: %v", err)
	}
	if err := e.SetGlobalMode(mode.NameStandard); err != nil {
		t.Fatalf("SetGlobalMode: %v", err)
	}
	if err := e.SetGlobalMode(mode.NameVim); err != nil {
		t.Fatalf("SetGlobalMode: %v", err)
	}

	v := e.GlobalMode().(*mode.Vim)
	if v.SubMode() != "normal" {
		t.Errorf("vim SubMode() = %q after round trip, want normal", v.SubMode())
	}
}

func TestInitWithText(t *testing.T) {
	e := newTestEditor(t)

	id := e.InitWithText("notes", "hello\nworld")
	if id == InvalidBuffer {
		t.Fatal("InitWithText returned InvalidBuffer")
	}
	if e.BufferCount() != 1 {
		t.Errorf("BufferCount() = %d, want 1", e.BufferCount())
	}
	if b := e.Buffer(id); b == nil || b.Text() != "hello\nworld" {
		t.Errorf("Buffer(%d) = %v", id, b)
	}
	if b := e.BufferByName("notes"); b == nil {
		t.Error("BufferByName(notes) = nil")
	}

	w := e.ActiveWindow()
	if w == nil {
		t.Fatal("ActiveWindow() = nil after InitWithText")
	}
	if w.BufferID() != id || w.Offset() != 0 {
		t.Errorf("window = {%d, %d}, want {%d, 0}", w.BufferID(), w.Offset(), id)
	}
}

func TestInitWithTextReplacesActiveWindow(t *testing.T) {
	e := newTestEditor(t)

	first := e.InitWithText("a", "one")
	second := e.InitWithText("b", "two")

	if first == second {
		t.Fatal("buffer IDs must be distinct")
	}
	if e.BufferCount() != 2 {
		t.Errorf("BufferCount() = %d, want 2", e.BufferCount())
	}
	if e.ActiveWindow().BufferID() != second {
		t.Errorf("active window targets %d, want %d", e.ActiveWindow().BufferID(), second)
	}
	// The first buffer still lives in the arena.
	if e.Buffer(first) == nil {
		t.Error("first buffer dropped from arena")
	}
}

func TestDeliverKey(t *testing.T) {
	e := newTestEditor(t)
	id := e.InitWithText("a", "hello\nworld")

	if err := e.DeliverKey(id, key.NewSpecialEvent(key.KeyDown, key.ModNone)); err != nil {
		t.Fatalf("DeliverKey: %v", err)
	}
	pos, ok := e.CursorPosition(id)
	if !ok {
		t.Fatal("CursorPosition not resolvable")
	}
	if pos.Line != 1 || pos.Column != 0 {
		t.Errorf("cursor = %v, want 1:0", pos)
	}
}

func TestDeliverKeyUnknownBuffer(t *testing.T) {
	e := newTestEditor(t)
	e.InitWithText("a", "text")

	if err := e.DeliverKey(BufferID(99), key.NewRuneEvent('j', key.ModNone)); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("error = %v, want ErrUnknownBuffer", err)
	}
}

func TestDeliverKeyRequiresActiveWindowPairing(t *testing.T) {
	e := newTestEditor(t)
	first := e.InitWithText("a", "aaa")
	e.InitWithText("b", "bbb")

	// The active window now targets the second buffer; delivery against
	// the first has no window pair and fails without touching content.
	err := e.DeliverKey(first, key.NewRuneEvent('x', key.ModNone))
	if !errors.Is(err, ErrNoActiveWindow) {
		t.Fatalf("error = %v, want ErrNoActiveWindow", err)
	}
	if e.Buffer(first).Text() != "aaa" {
		t.Error("buffer content changed without a window")
	}
}

func TestCursorClampedAfterShrink(t *testing.T) {
	e := newTestEditor(t)
	id := e.InitWithText("a", "one\ntwo")
	w := e.ActiveWindow()

	// Move to the last line, then delete it.
	if err := e.DeliverKey(id, key.NewRuneEvent('G', key.ModNone)); err != nil {
		t.Fatalf("DeliverKey: %v", err)
	}
	for _, r := range "dd" {
		if err := e.DeliverKey(id, key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatalf("DeliverKey(%q): %v", r, err)
		}
	}

	if w.Offset() > e.Buffer(id).Len() {
		t.Errorf("cursor offset %d beyond content length %d", w.Offset(), e.Buffer(id).Len())
	}
}

func TestCursorPositionPairing(t *testing.T) {
	e := newTestEditor(t)
	first := e.InitWithText("a", "aaa")
	second := e.InitWithText("b", "bbb")

	if _, ok := e.CursorPosition(first); ok {
		t.Error("CursorPosition should not resolve for a non-active buffer")
	}
	if _, ok := e.CursorPosition(second); !ok {
		t.Error("CursorPosition should resolve for the active buffer")
	}
}

func TestDisplayIsPresentationOnly(t *testing.T) {
	null := display.NewNull()
	e, err := New(t.TempDir(), WithDisplay(null))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.RegisterMode(mode.NewVim())
	id := e.InitWithText("a", "hello\nworld")

	e.SetDisplayRegion(display.NewRegion(0, 0, 80, 24))
	rev := e.Buffer(id).Revision()
	if err := e.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}

	if e.Buffer(id).Revision() != rev {
		t.Error("Display mutated buffer state")
	}
	v := null.LastView()
	if len(v.Lines) != 2 || v.Lines[0] != "hello" {
		t.Errorf("rendered lines = %q", v.Lines)
	}
	if v.Region.Width() != 80 {
		t.Errorf("rendered region width = %v, want 80", v.Region.Width())
	}
	if v.ModeName != "vim:normal" {
		t.Errorf("rendered mode = %q, want vim:normal", v.ModeName)
	}
}

func TestWindowClampAndPosition(t *testing.T) {
	e := newTestEditor(t)
	id := e.InitWithText("a", "hello")
	w := e.ActiveWindow()

	w.SetOffset(-5)
	if w.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", w.Offset())
	}
	w.SetOffset(100)
	if w.Offset() != 5 {
		t.Errorf("Offset() = %d, want 5 (clamped to length)", w.Offset())
	}

	e.Buffer(id).SetText("ab")
	w.Clamp()
	if w.Offset() != 2 {
		t.Errorf("Offset() = %d after shrink, want 2", w.Offset())
	}
}
