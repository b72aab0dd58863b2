package mode

import "github.com/zeno-editor/zeno/internal/key"

// Standard implements direct, non-modal editing: printable keys insert
// themselves and navigation/edit keys act immediately. It has no
// sub-states, so Reset is a no-op.
type Standard struct{}

// NewStandard creates a standard mode.
func NewStandard() *Standard {
	return &Standard{}
}

// Name returns the standard mode identity.
func (s *Standard) Name() string {
	return NameStandard
}

// Reset is a no-op; standard mode carries no pending state.
func (s *Standard) Reset() {}

// HandleKey consumes one key event. Ignored keys are not an error.
func (s *Standard) HandleKey(ev key.Event, ctx *Context) error {
	switch ev.Key {
	case key.KeyUp:
		moveVertical(ctx, -1, false)
		return nil
	case key.KeyDown:
		moveVertical(ctx, 1, false)
		return nil
	case key.KeyLeft:
		moveHorizontal(ctx, -1, false)
		return nil
	case key.KeyRight:
		moveHorizontal(ctx, 1, false)
		return nil
	case key.KeyHome:
		moveLineStart(ctx)
		return nil
	case key.KeyEnd:
		moveLineEnd(ctx, false)
		return nil
	case key.KeyEnter:
		return insertText(ctx, "\n")
	case key.KeyTab:
		return insertText(ctx, "\t")
	case key.KeyBackspace:
		return deleteBefore(ctx)
	case key.KeyDelete:
		return deleteAt(ctx)
	}

	if ev.IsChar() && !ev.IsModified() {
		return insertText(ctx, string(ev.Rune))
	}
	return nil
}
