// Package clipboard holds the last cut or copied content of a quill document
// and pastes it back through the buffer's primitives.
//
// Content is either a character span (first and last fragments are partial
// lines, middle fragments whole lines) or whole lines. An optional System
// bridge mirrors copies to the operating system clipboard.
package clipboard
