package display

// Null is the default display adapter for embedded sessions: the host
// does its own drawing, so Render only records the last view for
// inspection.
type Null struct {
	last  View
	calls int
}

// NewNull creates a null display.
func NewNull() *Null {
	return &Null{}
}

// Render records the view and draws nothing.
func (n *Null) Render(v View) error {
	n.last = v
	n.calls++
	return nil
}

// LastView returns the most recently rendered view.
func (n *Null) LastView() View {
	return n.last
}

// RenderCount returns how many frames have been rendered.
func (n *Null) RenderCount() int {
	return n.calls
}
