package buffer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the file I/O collaborator used by LoadFile and Save.
type Storage interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSStorage reads and writes the local filesystem.
//
// Writes go to a temporary file in the target directory which is then renamed
// over the target, so a failed save never leaves a truncated file behind.
// Symlinked targets are resolved first and the link itself is kept.
type OSStorage struct{}

func (OSStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSStorage) WriteFile(path string, data []byte) error {
	// Rename would replace a symlink with a regular file; write its target.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	perm := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// MemStorage is an in-memory Storage for tests and headless hosts.
// Missing paths report fs.ErrNotExist.
type MemStorage struct {
	mu    sync.Mutex
	files map[string][]byte

	// WriteErr, when set, fails every WriteFile call.
	WriteErr error
}

func NewMemStorage() *MemStorage {
	return &MemStorage{files: make(map[string][]byte)}
}

func (m *MemStorage) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemStorage) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}
