// Package editor provides a Bubble Tea model for editing one buffer.
//
// The model owns key dispatch, prompts, viewport behavior and rendering. All
// text-editing logic lives in the buffer, clipboard and search packages; the
// model only composes them and keeps the cursor, selection and search session
// consistent after every key.
package editor
