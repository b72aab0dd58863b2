// Package display defines the rendering boundary of the editor.
//
// The editor hands adapters a self-contained View (region, lines,
// cursor, mode) and observes nothing back. Null is the default for
// embedded sessions where the host draws; Terminal draws into a tcell
// screen for hosts that want the core to render.
package display
