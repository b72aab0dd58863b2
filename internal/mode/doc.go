// Package mode implements the pluggable key-interpretation strategies of
// the editor.
//
// Exactly two implementations are registered: Vim, a state machine over
// the sub-modes normal, insert, visual and operator-pending, and
// Standard, a direct modeless strategy. The editor selects the active
// global mode by name.
//
// Modes mutate only the buffer/cursor pair handed to them in a Context;
// they hold no reference to the editor between calls.
package mode
