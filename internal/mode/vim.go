package mode

import (
	"strings"

	"github.com/zeno-editor/zeno/internal/key"
)

// vimState identifies the vim sub-mode.
type vimState uint8

const (
	stateNormal vimState = iota
	stateInsert
	stateVisual
	stateOpPending
)

// String returns the sub-mode name.
func (s vimState) String() string {
	switch s {
	case stateNormal:
		return "normal"
	case stateInsert:
		return "insert"
	case stateVisual:
		return "visual"
	case stateOpPending:
		return "operator-pending"
	default:
		return "unknown"
	}
}

// register holds the last yanked or deleted text.
type register struct {
	text     string
	linewise bool
}

// Vim implements the modal vim-style editing mode. It is a state machine
// over the sub-modes normal, insert, visual and operator-pending; pending
// state (count prefix, operator) is cleared on every completed sequence.
type Vim struct {
	state        vimState
	count        int
	pendingOp    rune
	pendingG     bool
	visualAnchor int
	register     register
}

// NewVim creates a vim mode in normal state.
func NewVim() *Vim {
	return &Vim{state: stateNormal}
}

// Name returns the vim mode identity.
func (v *Vim) Name() string {
	return NameVim
}

// SubMode returns the current sub-mode name ("normal", "insert", ...).
func (v *Vim) SubMode() string {
	return v.state.String()
}

// Reset returns the machine to normal state and clears pending state.
func (v *Vim) Reset() {
	v.state = stateNormal
	v.count = 0
	v.pendingOp = 0
	v.pendingG = false
}

// HandleKey consumes one key event. Ignored keys are not an error.
func (v *Vim) HandleKey(ev key.Event, ctx *Context) error {
	switch v.state {
	case stateInsert:
		return v.handleInsert(ev, ctx)
	case stateVisual:
		return v.handleVisual(ev, ctx)
	case stateOpPending:
		return v.handleOpPending(ev, ctx)
	default:
		return v.handleNormal(ev, ctx)
	}
}

// takeCount consumes the accumulated count prefix, defaulting to 1.
func (v *Vim) takeCount() int {
	n := v.count
	v.count = 0
	if n == 0 {
		return 1
	}
	return n
}

func (v *Vim) handleNormal(ev key.Event, ctx *Context) error {
	if ev.IsEscape() {
		v.count = 0
		v.pendingG = false
		return nil
	}

	if v.pendingG {
		v.pendingG = false
		if ev.IsRune() && !ev.IsModified() && ev.Rune == 'g' {
			if v.count > 0 {
				moveToLine(ctx, v.takeCount()-1)
			} else {
				moveToLine(ctx, 0)
			}
			return nil
		}
		// Any other key cancels the g prefix and is dropped.
		v.count = 0
		return nil
	}

	switch ev.Key {
	case key.KeyUp:
		moveVertical(ctx, -v.takeCount(), true)
		return nil
	case key.KeyDown:
		moveVertical(ctx, v.takeCount(), true)
		return nil
	case key.KeyLeft:
		moveHorizontal(ctx, -v.takeCount(), true)
		return nil
	case key.KeyRight:
		moveHorizontal(ctx, v.takeCount(), true)
		return nil
	case key.KeyHome:
		v.count = 0
		moveLineStart(ctx)
		return nil
	case key.KeyEnd:
		v.count = 0
		moveLineEnd(ctx, true)
		return nil
	}

	if !ev.IsRune() || ev.IsModified() {
		// Ctrl/Alt chords and remaining specials are ignored in normal mode.
		return nil
	}

	r := ev.Rune

	// Count prefix: 1-9 always, 0 only once a count has started.
	if r >= '1' && r <= '9' {
		v.count = v.count*10 + int(r-'0')
		return nil
	}
	if r == '0' && v.count > 0 {
		v.count = v.count * 10
		return nil
	}

	switch r {
	// Motions.
	case 'h':
		moveHorizontal(ctx, -v.takeCount(), true)
	case 'l':
		moveHorizontal(ctx, v.takeCount(), true)
	case 'j':
		moveVertical(ctx, v.takeCount(), true)
	case 'k':
		moveVertical(ctx, -v.takeCount(), true)
	case '0':
		moveLineStart(ctx)
	case '$':
		v.count = 0
		moveLineEnd(ctx, true)
	case '^':
		v.count = 0
		moveFirstNonBlank(ctx)
	case 'G':
		if v.count > 0 {
			moveToLine(ctx, v.takeCount()-1)
		} else {
			moveToLine(ctx, ctx.Buffer.LineCount()-1)
		}
	case 'g':
		// First half of gg; the count prefix is preserved.
		v.pendingG = true

	// Insert-mode entries.
	case 'i':
		v.enterInsert()
	case 'I':
		v.enterInsert()
		moveFirstNonBlank(ctx)
	case 'a':
		v.enterInsert()
		moveHorizontal(ctx, 1, false)
	case 'A':
		v.enterInsert()
		moveLineEnd(ctx, false)
	case 'o':
		v.enterInsert()
		return openLine(ctx, true)
	case 'O':
		v.enterInsert()
		return openLine(ctx, false)

	// Character edits.
	case 'x':
		return v.deleteChars(ctx, v.takeCount(), true)
	case 'X':
		return v.deleteChars(ctx, v.takeCount(), false)
	case 'D':
		v.count = 0
		return v.deleteToLineEnd(ctx)

	// Operators.
	case 'd', 'y', 'c':
		v.pendingOp = r
		v.state = stateOpPending

	// Paste.
	case 'p':
		v.count = 0
		return v.paste(ctx, true)
	case 'P':
		v.count = 0
		return v.paste(ctx, false)

	// Visual mode.
	case 'v':
		v.count = 0
		v.visualAnchor = ctx.Cursor.Offset()
		v.state = stateVisual

	default:
		// Unmapped key: drop any pending count.
		v.count = 0
	}

	return nil
}

func (v *Vim) handleOpPending(ev key.Event, ctx *Context) error {
	op := v.pendingOp
	count := v.takeCount()
	v.pendingOp = 0
	v.state = stateNormal

	if !ev.IsRune() || ev.IsModified() || ev.Rune != op {
		// Anything but the doubled operator cancels the pending state.
		return nil
	}

	line := ctx.position().Line
	switch op {
	case 'y':
		v.register = register{text: yankLines(ctx, line, count), linewise: true}
		return nil
	case 'd':
		v.register = register{text: yankLines(ctx, line, count), linewise: true}
		if err := deleteLines(ctx, line, count); err != nil {
			return err
		}
		moveToLine(ctx, min(line, ctx.Buffer.LineCount()-1))
		return nil
	case 'c':
		v.register = register{text: yankLines(ctx, line, count), linewise: true}
		if err := changeLines(ctx, line, count); err != nil {
			return err
		}
		v.enterInsert()
		return nil
	}
	return nil
}

func (v *Vim) handleVisual(ev key.Event, ctx *Context) error {
	if ev.IsEscape() {
		v.state = stateNormal
		v.count = 0
		return nil
	}

	switch ev.Key {
	case key.KeyUp:
		moveVertical(ctx, -v.takeCount(), true)
		return nil
	case key.KeyDown:
		moveVertical(ctx, v.takeCount(), true)
		return nil
	case key.KeyLeft:
		moveHorizontal(ctx, -v.takeCount(), true)
		return nil
	case key.KeyRight:
		moveHorizontal(ctx, v.takeCount(), true)
		return nil
	}

	if !ev.IsRune() || ev.IsModified() {
		return nil
	}

	// Count prefixes accumulate the same way as in normal mode.
	if r := ev.Rune; r >= '1' && r <= '9' {
		v.count = v.count*10 + int(r-'0')
		return nil
	}
	if ev.Rune == '0' && v.count > 0 {
		v.count = v.count * 10
		return nil
	}

	switch r := ev.Rune; r {
	case 'h':
		moveHorizontal(ctx, -v.takeCount(), true)
	case 'l':
		moveHorizontal(ctx, v.takeCount(), true)
	case 'j':
		moveVertical(ctx, v.takeCount(), true)
	case 'k':
		moveVertical(ctx, -v.takeCount(), true)
	case '0':
		moveLineStart(ctx)
	case '$':
		moveLineEnd(ctx, true)
	case 'y':
		start, end := v.selection(ctx)
		v.register = register{text: ctx.Buffer.TextRange(start, end)}
		ctx.Cursor.SetOffset(start)
		v.state = stateNormal
	case 'd', 'x':
		start, end := v.selection(ctx)
		v.register = register{text: ctx.Buffer.TextRange(start, end)}
		if err := ctx.Buffer.Delete(start, end); err != nil {
			return err
		}
		ctx.Cursor.SetOffset(start)
		clampToLine(ctx, true)
		v.state = stateNormal
	case 'v':
		v.state = stateNormal
	default:
		v.count = 0
	}
	return nil
}

// selection returns the inclusive-character visual range as [start, end).
func (v *Vim) selection(ctx *Context) (int, int) {
	start, end := v.visualAnchor, ctx.Cursor.Offset()
	if start > end {
		start, end = end, start
	}
	end++
	if max := ctx.Buffer.Len(); end > max {
		end = max
	}
	return start, end
}

func (v *Vim) handleInsert(ev key.Event, ctx *Context) error {
	if ev.IsEscape() {
		v.state = stateNormal
		moveHorizontal(ctx, -1, true)
		return nil
	}

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

func (v *Vim) enterInsert() {
	v.count = 0
	v.pendingOp = 0
	v.state = stateInsert
}

// deleteChars removes count characters at (forward) or before (backward)
// the cursor, staying within the current line.
func (v *Vim) deleteChars(ctx *Context, count int, forward bool) error {
	pos := ctx.position()
	lineEnd := ctx.Buffer.LineEnd(pos.Line)
	off := ctx.Cursor.Offset()

	var start, end int
	if forward {
		start = off
		end = off + count
		if end > lineEnd {
			end = lineEnd
		}
	} else {
		lineStart := ctx.Buffer.LineStart(pos.Line)
		end = off
		start = off - count
		if start < lineStart {
			start = lineStart
		}
	}
	if start >= end {
		return nil
	}

	v.register = register{text: ctx.Buffer.TextRange(start, end)}
	if err := ctx.Buffer.Delete(start, end); err != nil {
		return err
	}
	ctx.Cursor.SetOffset(start)
	clampToLine(ctx, true)
	return nil
}

// deleteToLineEnd implements D.
func (v *Vim) deleteToLineEnd(ctx *Context) error {
	pos := ctx.position()
	start := ctx.Cursor.Offset()
	end := ctx.Buffer.LineEnd(pos.Line)
	if start >= end {
		return nil
	}
	v.register = register{text: ctx.Buffer.TextRange(start, end)}
	if err := ctx.Buffer.Delete(start, end); err != nil {
		return err
	}
	clampToLine(ctx, true)
	return nil
}

// paste inserts the register contents after (p) or before (P) the cursor.
func (v *Vim) paste(ctx *Context, after bool) error {
	if v.register.text == "" {
		return nil
	}
	if v.register.linewise {
		return pasteLinewise(ctx, v.register.text, after)
	}

	off := ctx.Cursor.Offset()
	if after {
		pos := ctx.position()
		if off < ctx.Buffer.LineEnd(pos.Line) {
			off++
		}
	}
	end, err := ctx.Buffer.Insert(off, v.register.text)
	if err != nil {
		return err
	}
	ctx.Cursor.SetOffset(end - 1)
	return nil
}

// pasteLinewise inserts whole lines above or below the cursor line.
func pasteLinewise(ctx *Context, text string, after bool) error {
	pos := ctx.position()
	if after && pos.Line == ctx.Buffer.LineCount()-1 {
		// Below the last line: append with a fresh newline.
		body := strings.TrimSuffix(text, "\n")
		if _, err := ctx.Buffer.Insert(ctx.Buffer.Len(), "\n"+body); err != nil {
			return err
		}
		moveToLine(ctx, pos.Line+1)
		return nil
	}

	line := pos.Line
	if after {
		line++
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	start := ctx.Buffer.LineStart(line)
	if _, err := ctx.Buffer.Insert(start, text); err != nil {
		return err
	}
	ctx.Cursor.SetOffset(start)
	return nil
}

// openLine starts a new line below or above the cursor line and places
// the cursor on it.
func openLine(ctx *Context, below bool) error {
	pos := ctx.position()
	if below {
		end := ctx.Buffer.LineEnd(pos.Line)
		off, err := ctx.Buffer.Insert(end, "\n")
		if err != nil {
			return err
		}
		ctx.Cursor.SetOffset(off)
		return nil
	}
	start := ctx.Buffer.LineStart(pos.Line)
	if _, err := ctx.Buffer.Insert(start, "\n"); err != nil {
		return err
	}
	ctx.Cursor.SetOffset(start)
	return nil
}

// yankLines returns count whole lines starting at line, newline-terminated.
func yankLines(ctx *Context, line, count int) string {
	var sb strings.Builder
	for i := line; i < line+count && i < ctx.Buffer.LineCount(); i++ {
		sb.WriteString(ctx.Buffer.Line(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// deleteLines removes count whole lines starting at line.
func deleteLines(ctx *Context, line, count int) error {
	for i := 0; i < count && line < ctx.Buffer.LineCount(); i++ {
		if err := ctx.Buffer.DeleteLine(line); err != nil {
			return err
		}
		if ctx.Buffer.LineCount() == 1 && ctx.Buffer.LineLen(0) == 0 {
			break
		}
	}
	return nil
}

// changeLines clears the content of count lines, joining them into one
// empty line for the upcoming insert.
func changeLines(ctx *Context, line, count int) error {
	last := line + count - 1
	if max := ctx.Buffer.LineCount() - 1; last > max {
		last = max
	}
	start := ctx.Buffer.LineStart(line)
	end := ctx.Buffer.LineEnd(last)
	if err := ctx.Buffer.Delete(start, end); err != nil {
		return err
	}
	ctx.Cursor.SetOffset(start)
	return nil
}

// insertText inserts text at the cursor and advances past it.
func insertText(ctx *Context, text string) error {
	end, err := ctx.Buffer.Insert(ctx.Cursor.Offset(), text)
	if err != nil {
		return err
	}
	ctx.Cursor.SetOffset(end)
	return nil
}

// deleteBefore removes the byte before the cursor, joining lines across
// a newline.
func deleteBefore(ctx *Context) error {
	off := ctx.Cursor.Offset()
	if off == 0 {
		return nil
	}
	if err := ctx.Buffer.Delete(off-1, off); err != nil {
		return err
	}
	ctx.Cursor.SetOffset(off - 1)
	return nil
}

// deleteAt removes the byte under the cursor.
func deleteAt(ctx *Context) error {
	off := ctx.Cursor.Offset()
	if off >= ctx.Buffer.Len() {
		return nil
	}
	return ctx.Buffer.Delete(off, off+1)
}
