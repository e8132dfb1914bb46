// Package search finds literal or pattern matches in a quill document and
// replaces them.
//
// Matches never span a line break. Columns and lengths are in runes, the same
// coordinates the buffer package uses. A match list is a snapshot: it is only
// rebased by the replace operations of the Manager that produced it.
package search
