package buffer

import (
	"fmt"
	"sync/atomic"
)

// Position is a zero-based (line, column) coordinate pair. Columns are
// byte counts from the line start.
type Position struct {
	Line   int
	Column int
}

// String returns a "line:column" representation.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before returns true if p comes before other in the buffer.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Revision identifies one generation of buffer content. Two reads with
// the same revision observed the same content.
type Revision uint64

var revisionCounter uint64

// NextRevision returns a process-unique revision value.
func NextRevision() Revision {
	return Revision(atomic.AddUint64(&revisionCounter, 1))
}
