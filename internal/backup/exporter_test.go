package backup

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mbraun/recyourself/internal/models"
	"github.com/mbraun/recyourself/internal/storage"
)

func tempExporter(t *testing.T) (*Exporter, storage.Provider) {
	t.Helper()
	fs, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return New(fs), fs
}

func TestSnapshotWritesBareArray(t *testing.T) {
	e, fs := tempExporter(t)

	recs := []models.Recording{
		{ID: 1, Title: "a", Description: "d", Audio: "/public/a_1.wav", CreatedAt: "01.02.2025 10:11:12"},
	}
	location, err := e.Snapshot(recs)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if filepath.Dir(location) != Dir {
		t.Errorf("location = %q, want file under %q", location, Dir)
	}
	if !strings.HasPrefix(filepath.Base(location), "recordings-") {
		t.Errorf("unexpected snapshot name: %q", location)
	}

	raw, err := fs.Read(location)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var out []models.Recording
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("snapshot is not a bare array: %v", err)
	}
	if len(out) != 1 || out[0] != recs[0] {
		t.Errorf("snapshot content = %+v", out)
	}
}

func TestSnapshotEmptyList(t *testing.T) {
	e, fs := tempExporter(t)

	location, err := e.Snapshot(nil)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	raw, _ := fs.Read(location)
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Errorf("empty snapshot = %q, want []", raw)
	}
}

func TestSnapshotsAccumulate(t *testing.T) {
	e, fs := tempExporter(t)

	// Deterministic clock so back-to-back snapshots land in distinct files.
	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	e.now = func() time.Time {
		base = base.Add(time.Millisecond)
		return base
	}

	first, err := e.Snapshot(nil)
	if err != nil {
		t.Fatalf("first Snapshot: %v", err)
	}
	second, err := e.Snapshot(nil)
	if err != nil {
		t.Fatalf("second Snapshot: %v", err)
	}
	if first == second {
		t.Fatalf("snapshots collided: %q", first)
	}
	if !fs.Exists(first) || !fs.Exists(second) {
		t.Error("expected both snapshot files to exist")
	}
}
