// Package script embeds a sandboxed Lua host that drives an editing
// session through the same boundary a foreign host uses. Scripts see a
// single `zeno` table for creating buffers, sending keys and reading
// state; the io, os, debug and package libraries are never opened.
package script
