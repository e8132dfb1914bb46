// Package buffer implements the in-memory document model for quill: the line
// store, a sticky-column cursor, and an anchor-based selection.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open spans in document coordinates: [Start, End).
//
// Positions are not persistent handles. They are meaningful until the next
// mutation; callers re-clamp dependent state (Cursor.ClampToBuffer) after
// structural edits performed elsewhere.
package buffer
