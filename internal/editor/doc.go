// Package editor implements the per-session coordination object.
//
// An Editor owns an arena of buffers addressed by stable BufferIDs, a
// registry of editing modes with exactly one active global mode, the
// active window and the display region. Windows reference arena entries
// but never own them, so swapping or dropping buffers cannot leave a
// window holding a dangling owner.
package editor
