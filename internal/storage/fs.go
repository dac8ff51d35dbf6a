package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrOutsideBase = errors.New("key escapes store base")

// FSStore keeps files under base. A confined store (NewFSStore) rejects
// keys that would leave base; a local store (NewLocalStore) also accepts
// absolute and "~/" keys.
type FSStore struct {
	base     string
	confined bool
}

// NewFSStore returns a store that never resolves outside base.
func NewFSStore(base string) (*FSStore, error) {
	return newFSStore(base, true)
}

// NewLocalStore is for a user running the CLI on their own files.
func NewLocalStore(base string) (*FSStore, error) {
	return newFSStore(base, false)
}

func newFSStore(base string, confined bool) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: abs, confined: confined}, nil
}

func (s *FSStore) Base() string { return s.base }

// Resolve maps key to a filesystem path.
func (s *FSStore) Resolve(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("empty key")
	}
	if s.confined {
		return s.confine(key)
	}
	if key == "~" || strings.HasPrefix(key, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(key, "~")), nil
	}
	if filepath.IsAbs(key) {
		return filepath.Clean(key), nil
	}
	return filepath.Join(s.base, filepath.Clean(key)), nil
}

func (s *FSStore) confine(key string) (string, error) {
	if strings.HasPrefix(key, "~") || filepath.IsAbs(key) || strings.HasPrefix(key, "/") || strings.HasPrefix(key, `\`) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, key)
	}
	p := filepath.Join(s.base, filepath.Clean(key))
	rel, err := filepath.Rel(s.base, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, key)
	}
	return p, nil
}

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	dst, err := s.Resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	return dst, f.Close()
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	p, err := s.Resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}
