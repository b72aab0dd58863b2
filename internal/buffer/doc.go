// Package buffer implements the text-content container used by the
// editor: a mutable byte sequence plus a derived line-start offset table.
//
// The table makes offset-to-line/column resolution a binary search. It is
// rebuilt after every mutation, so queries never observe a stale index.
//
// Buffers are not safe for concurrent use; the embedding boundary is
// specified as single-threaded per session and provides the only access.
package buffer
