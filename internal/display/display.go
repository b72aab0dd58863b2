package display

import "github.com/zeno-editor/zeno/internal/buffer"

// Vec2 is a 2-D point in host display coordinates.
type Vec2 struct {
	X float32
	Y float32
}

// Region is the rectangle the editor renders into, given as two corner
// points (top-left, bottom-right).
type Region struct {
	Min Vec2
	Max Vec2
}

// NewRegion builds a region from an origin and a size.
func NewRegion(x, y, width, height float32) Region {
	return Region{
		Min: Vec2{X: x, Y: y},
		Max: Vec2{X: x + width, Y: y + height},
	}
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the region.
func (r Region) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the region has no area.
func (r Region) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// View is the frame handed to a display adapter: everything it needs to
// draw one editor state, with no back-references into the editor.
type View struct {
	// Region is the configured display rectangle.
	Region Region

	// Lines is the buffer content split into lines, newlines excluded.
	Lines []string

	// Cursor is the rendered cursor position.
	Cursor buffer.Position

	// ModeName names the active global mode, for status display.
	ModeName string

	// BufferName names the displayed buffer.
	BufferName string
}

// Display renders editor state. Implementations are external
// collaborators; the core only hands them a View and observes no result.
type Display interface {
	// Render draws one frame. Errors are reported for logging only; the
	// editor state is never affected by a render failure.
	Render(v View) error
}
