// Package backup writes point-in-time snapshots of the recording list.
package backup

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mbraun/recyourself/internal/models"
	"github.com/mbraun/recyourself/internal/storage"
)

// Dir is the directory inside the data root where snapshots accumulate.
// There is no retention policy; every snapshot is a new file.
const Dir = "backups"

// Millisecond precision keeps rapid successive snapshots from colliding.
const timestampLayout = "20060102-150405.000"

// Exporter writes snapshot files through a storage provider.
type Exporter struct {
	fs  storage.Provider
	now func() time.Time
}

// New creates an Exporter backed by the given provider.
func New(fs storage.Provider) *Exporter {
	return &Exporter{fs: fs, now: time.Now}
}

// Snapshot writes recs as a bare JSON array to a new timestamped file and
// returns its location relative to the data root. It never mutates state.
func (e *Exporter) Snapshot(recs []models.Recording) (string, error) {
	if recs == nil {
		recs = []models.Recording{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("backup: marshal: %w", err)
	}
	name := fmt.Sprintf("recordings-%s.json", e.now().Format(timestampLayout))
	rel := filepath.Join(Dir, name)
	if err := e.fs.Write(rel, data); err != nil {
		return "", fmt.Errorf("backup: write %s: %w", name, err)
	}
	return rel, nil
}
