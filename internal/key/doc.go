// Package key defines the key event model shared by the editing modes and
// the embedding boundary.
//
// Hosts deliver raw (key, modifier) integer pairs over the wire protocol;
// Translate converts them into Events. Four reserved codes (1000-1003) map
// to the arrow keys, control characters map to their special keys, and
// every other code is carried through as a literal character. Modifier
// bits follow the wire layout: Ctrl=1, Alt=2, Shift=4.
package key
