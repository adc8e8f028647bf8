// Package recording implements the recording repository: create, list,
// update, delete, and backup over the metadata store and the audio store.
package recording

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mbraun/recyourself/internal/apperr"
	"github.com/mbraun/recyourself/internal/audiostore"
	"github.com/mbraun/recyourself/internal/backup"
	"github.com/mbraun/recyourself/internal/metastore"
	"github.com/mbraun/recyourself/internal/models"
)

// Service owns the in-memory recording list and the id allocator, and keeps
// them in sync with the metadata store. Mutations are serialized by a mutex:
// handlers run on concurrent goroutines but the store assumes one in-flight
// mutation at a time.
type Service struct {
	mu       sync.Mutex
	meta     *metastore.Store
	audio    *audiostore.Store
	exporter *backup.Exporter

	recs  []models.Recording
	alloc *allocator
	now   func() time.Time
}

// NewService loads the persisted document and seeds the allocator from it.
func NewService(meta *metastore.Store, audio *audiostore.Store, exporter *backup.Exporter) (*Service, error) {
	recs, err := meta.Load()
	if err != nil {
		return nil, err
	}
	return &Service{
		meta:     meta,
		audio:    audio,
		exporter: exporter,
		recs:     recs,
		alloc:    newAllocator(recs),
		now:      time.Now,
	}, nil
}

// Create validates the input, materializes the audio payload if it is a data
// URI, allocates an id, stamps createdAt, appends, and persists the full
// document. Validation and materialization happen before any metadata write.
func (s *Service) Create(_ context.Context, title, description, audio string) (models.Recording, error) {
	if title == "" || description == "" || audio == "" {
		return models.Recording{}, apperr.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The file name needs the id before the allocation commits: a failed
	// materialization must not consume an id.
	id := s.alloc.peek()

	audioValue := audio
	if audiostore.IsDataURI(audio) {
		ref, err := s.audio.Store(audio, title, id)
		if err != nil {
			return models.Recording{}, err
		}
		audioValue = ref
	}

	rec := models.Recording{
		ID:          s.alloc.allocate(),
		Title:       title,
		Description: description,
		Audio:       audioValue,
		CreatedAt:   models.NewCreatedAt(s.now()),
	}

	s.recs = append(s.recs, rec)
	if err := s.meta.Save(s.recs); err != nil {
		return models.Recording{}, err
	}
	return rec, nil
}

// List returns the current in-memory list in insertion order.
func (s *Service) List(_ context.Context) []models.Recording {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recording, len(s.recs))
	copy(out, s.recs)
	return out
}

// Update overwrites title and description of the record with the given id.
// The document is re-read from disk rather than patched from the cache, so
// out-of-process edits are picked up; the cache is refreshed to the patched
// list afterwards. Both fields are written exactly as sent — there is no
// partial-patch merging. id, audio, and createdAt never change.
func (s *Service) Update(_ context.Context, id int, title, description string) (models.Recording, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.meta.Load()
	if err != nil {
		return models.Recording{}, err
	}

	idx := -1
	for i, r := range recs {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Recording{}, apperr.ErrNotFound
	}

	recs[idx].Title = title
	recs[idx].Description = description

	if err := s.meta.Save(recs); err != nil {
		return models.Recording{}, err
	}
	s.recs = recs
	return recs[idx], nil
}

// Delete removes the record and, if its audio is a file reference, the
// materialized file. File removal failure is logged but does not roll back
// the metadata change.
func (s *Service) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.recs {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.ErrNotFound
	}

	rec := s.recs[idx]
	s.recs = append(s.recs[:idx], s.recs[idx+1:]...)

	if rec.AudioIsFileRef() {
		if err := s.audio.Remove(rec.Audio); err != nil {
			slog.Warn("audio file removal failed",
				slog.Int("id", rec.ID),
				slog.String("audio", rec.Audio),
				slog.String("error", err.Error()))
		}
	}

	return s.meta.Save(s.recs)
}

// Backup snapshots the current in-memory list to a new timestamped file and
// returns its location. It never mutates state.
func (s *Service) Backup(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exporter.Snapshot(s.recs)
}
