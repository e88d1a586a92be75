// Package project persists analysis snapshots as opaque JSON blobs on disk,
// keyed by generated UUIDs.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound reports a project id with no stored blob.
var ErrNotFound = errors.New("project not found")

// Store writes project blobs under a single directory.
type Store struct {
	dir string
}

// NewStore ensures the storage directory exists and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save stores the raw JSON payload and returns its generated project id.
func (s *Store) Save(data json.RawMessage) (string, error) {
	if len(data) == 0 || !json.Valid(data) {
		return "", errors.New("project payload must be valid JSON")
	}

	id := uuid.NewString()
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("write project %s: %w", id, err)
	}
	return id, nil
}

// Load returns the stored payload for id, or ErrNotFound.
func (s *Store) Load(id string) (json.RawMessage, error) {
	// Reject anything that is not a UUID so ids cannot traverse paths.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", id, err)
	}
	return data, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
