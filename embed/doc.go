// Package embed is the foreign-call boundary of the editing core.
//
// A host creates a session with Create, receives an opaque Handle, and
// drives everything through package-level functions taking that handle
// plus primitive arguments. No internal type crosses the boundary, and
// no internal failure does either: invalid handles, absent buffers and
// internal faults all collapse to documented sentinels (0, false, "" or
// a silent no-op), never a panic reaching the host.
//
// Text returned by GetText follows the C string contract: content is
// truncated to capacity-1 bytes and always NUL-terminated when the
// output buffer is non-empty.
//
// Sessions are single-threaded: operations on one handle must be
// externally serialized. Distinct handles share nothing and may be used
// from different goroutines.
package embed
