package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON file, the local-storage analog
// for CLI and desktop embedders. Writes go through a temp file and rename
// so a crash never leaves a half-written state behind.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The file is created lazily
// on first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get implements [Store].
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return "", err
	}
	value, ok := slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements [Store].
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return err
	}
	slots[key] = value
	return f.save(slots)
}

// Delete implements [Store]. Deleting an absent key is not an error.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return f.save(slots)
}

func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}

	slots := map[string]string{}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("storage: corrupt state file %s: %w", f.path, err)
	}
	return slots, nil
}

func (f *File) save(slots map[string]string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("storage: encode state: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".learnkit-*")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close state: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: replace state: %w", err)
	}
	return nil
}
