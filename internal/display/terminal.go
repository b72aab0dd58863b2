package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal renders views onto a tcell screen. It is used by hosts that
// want the core to draw directly into a terminal instead of doing their
// own rendering.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	closed bool
}

// NewTerminal creates a terminal display over a fresh tcell screen.
// The caller owns the screen lifecycle via Init and Close.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// NewTerminalWithScreen wraps an existing screen. Used by hosts that
// poll the same screen for input events.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, style: tcell.StyleDefault}
}

// Init prepares the underlying screen.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Close releases the underlying screen. Safe to call more than once.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for event polling.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Render draws the view into the configured region of the screen.
func (t *Terminal) Render(v View) error {
	t.screen.Clear()

	originX := int(v.Region.Min.X)
	originY := int(v.Region.Min.Y)
	width := int(v.Region.Width())
	height := int(v.Region.Height())
	screenW, screenH := t.screen.Size()
	if width <= 0 || width > screenW {
		width = screenW
	}
	if height <= 0 || height > screenH {
		height = screenH
	}

	statusRow := height - 1
	for row := 0; row < statusRow && row < len(v.Lines); row++ {
		t.drawLine(originX, originY+row, width, v.Lines[row], t.style)
	}

	if statusRow >= 0 {
		status := " " + v.ModeName
		if v.BufferName != "" {
			status += "  " + v.BufferName
		}
		t.drawLine(originX, originY+statusRow, width, status, t.style.Reverse(true))
	}

	t.screen.ShowCursor(originX+cellColumn(v.Lines, v.Cursor.Line, v.Cursor.Column), originY+v.Cursor.Line)
	t.screen.Show()
	return nil
}

// drawLine writes one line of text, width-aware, padding with spaces.
func (t *Terminal) drawLine(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		t.screen.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < width; col++ {
		t.screen.SetContent(x+col, y, ' ', nil, style)
	}
}

// cellColumn converts a byte column into a terminal cell column,
// accounting for wide runes.
func cellColumn(lines []string, line, byteCol int) int {
	if line < 0 || line >= len(lines) {
		return 0
	}
	text := lines[line]
	if byteCol > len(text) {
		byteCol = len(text)
	}
	col := 0
	for i, r := range text {
		if i >= byteCol {
			break
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}
