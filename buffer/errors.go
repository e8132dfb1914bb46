package buffer

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by Save when the buffer has no target file name.
var ErrNoPath = errors.New("buffer: no file name set")

// IOError reports a failed read or write through the Storage collaborator.
// The buffer is left unchanged when one is returned.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
