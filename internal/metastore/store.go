// Package metastore persists the recording list as a single JSON document.
//
// The document is read whole at load time and rewritten whole on every
// mutation: nothing is considered persisted until Save returns.
package metastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mbraun/recyourself/internal/models"
	"github.com/mbraun/recyourself/internal/storage"
)

// DocumentPath is the location of the metadata document inside the data
// directory.
const DocumentPath = "db.json"

type document struct {
	Recordings []models.Recording `json:"recordings"`
}

// Store reads and writes the metadata document through a storage provider.
type Store struct {
	fs storage.Provider
}

// New creates a Store backed by the given provider.
func New(fs storage.Provider) *Store {
	return &Store{fs: fs}
}

// Load reads the full document. A missing file is first-run bootstrap and
// yields an empty list, not an error. Malformed content is a fatal load
// error; no recovery or partial parsing is attempted.
func (s *Store) Load() ([]models.Recording, error) {
	data, err := s.fs.Read(DocumentPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Recording{}, nil
		}
		return nil, fmt.Errorf("metastore: load: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("metastore: malformed document: %w", err)
	}
	if doc.Recordings == nil {
		doc.Recordings = []models.Recording{}
	}
	return doc.Recordings, nil
}

// Save serializes the full list and overwrites the document atomically.
func (s *Store) Save(recs []models.Recording) error {
	if recs == nil {
		recs = []models.Recording{}
	}
	data, err := json.MarshalIndent(document{Recordings: recs}, "", "  ")
	if err != nil {
		return fmt.Errorf("metastore: marshal: %w", err)
	}
	if err := s.fs.Write(DocumentPath, data); err != nil {
		return fmt.Errorf("metastore: save: %w", err)
	}
	return nil
}
