package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository keeps the session in a JSON document so it survives restarts on one device
type FileRepository struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileRepository opens (or lazily creates) the session file at path
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(data, &r.values); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	// a "null" document decodes to a nil map
	if r.values == nil {
		r.values = make(map[string]string)
	}
	return r, nil
}

// Get returns the value stored under key
func (r *FileRepository) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	return v, ok, nil
}

// Set stores value under key and flushes the file
func (r *FileRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, had := r.values[key]
	r.values[key] = value
	if err := r.flush(); err != nil {
		if had {
			r.values[key] = prev
		} else {
			delete(r.values, key)
		}
		return err
	}
	return nil
}

// Remove deletes key and flushes the file
func (r *FileRepository) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, had := r.values[key]
	if !had {
		return nil
	}
	delete(r.values, key)
	if err := r.flush(); err != nil {
		r.values[key] = prev
		return err
	}
	return nil
}

// flush writes through a temp file and rename so readers never see a torn document
func (r *FileRepository) flush() error {
	data, err := json.MarshalIndent(r.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
