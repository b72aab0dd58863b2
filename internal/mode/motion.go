package mode

import "github.com/zeno-editor/zeno/internal/buffer"

// Shared cursor motions used by both modes. All motions clamp to valid
// buffer positions; onChar restricts the column to the last character of
// the line (vim normal-mode behavior) instead of one past it.

// moveVertical moves the cursor delta lines, keeping the column where
// the target line allows.
func moveVertical(ctx *Context, delta int, onChar bool) {
	pos := ctx.position()
	line := pos.Line + delta
	if line < 0 {
		line = 0
	}
	if max := ctx.Buffer.LineCount() - 1; line > max {
		line = max
	}

	col := pos.Column
	if limit := lineColLimit(ctx.Buffer, line, onChar); col > limit {
		col = limit
	}
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(line) + col)
}

// moveHorizontal moves the cursor delta columns within the current line.
func moveHorizontal(ctx *Context, delta int, onChar bool) {
	pos := ctx.position()
	col := pos.Column + delta
	if col < 0 {
		col = 0
	}
	if limit := lineColLimit(ctx.Buffer, pos.Line, onChar); col > limit {
		col = limit
	}
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(pos.Line) + col)
}

// moveLineStart moves the cursor to column 0 of the current line.
func moveLineStart(ctx *Context) {
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(ctx.position().Line))
}

// moveLineEnd moves the cursor to the end of the current line.
func moveLineEnd(ctx *Context, onChar bool) {
	line := ctx.position().Line
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(line) + lineColLimit(ctx.Buffer, line, onChar))
}

// moveToLine places the cursor at the start of the given line, clamped.
func moveToLine(ctx *Context, line int) {
	if line < 0 {
		line = 0
	}
	if max := ctx.Buffer.LineCount() - 1; line > max {
		line = max
	}
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(line))
}

// moveFirstNonBlank moves to the first non-blank character of the line.
func moveFirstNonBlank(ctx *Context) {
	line := ctx.position().Line
	text := ctx.Buffer.Line(line)
	col := 0
	for col < len(text) && (text[col] == ' ' || text[col] == '\t') {
		col++
	}
	if limit := lineColLimit(ctx.Buffer, line, true); col > limit {
		col = limit
	}
	ctx.Cursor.SetOffset(ctx.Buffer.LineStart(line) + col)
}

// lineColLimit returns the maximum column for a line. With onChar the
// cursor must sit on a character, so the limit is one less than the line
// length (but never negative).
func lineColLimit(b *buffer.Buffer, line int, onChar bool) int {
	n := b.LineLen(line)
	if onChar && n > 0 {
		return n - 1
	}
	return n
}

// clampToLine keeps an arbitrary offset on a valid column of its line.
func clampToLine(ctx *Context, onChar bool) {
	pos := ctx.position()
	if limit := lineColLimit(ctx.Buffer, pos.Line, onChar); pos.Column > limit {
		ctx.Cursor.SetOffset(ctx.Buffer.LineStart(pos.Line) + limit)
	}
}
