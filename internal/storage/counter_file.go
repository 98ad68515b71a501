package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileCounterStore keeps the last issued order number as a decimal string in a
// single file. The read-modify-write is a critical section; the mutex keeps
// concurrent submissions from reusing a number.
type FileCounterStore struct {
	mu   sync.Mutex
	path string
}

func NewFileCounterStore(path string) (*FileCounterStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create counter directory: %w", err)
	}
	return &FileCounterStore{path: path}, nil
}

func (s *FileCounterStore) NextOrderID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := 0
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		// Anything other than a plain non-negative integer counts as 0.
		if n, convErr := strconv.Atoi(strings.TrimSpace(string(data))); convErr == nil && n >= 0 {
			last = n
		}
	case os.IsNotExist(err):
		// first order ever
	default:
		return 0, fmt.Errorf("failed to read counter file: %w", err)
	}

	next := last + 1
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(next)), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write counter file: %w", err)
	}
	return next, nil
}
