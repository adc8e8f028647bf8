// Package testutil provides shared test helpers for setting up data
// directories and recording services.
package testutil

import (
	"testing"

	"github.com/mbraun/recyourself/internal/audiostore"
	"github.com/mbraun/recyourself/internal/backup"
	"github.com/mbraun/recyourself/internal/metastore"
	"github.com/mbraun/recyourself/internal/recording"
	"github.com/mbraun/recyourself/internal/storage"
)

// TestDataDir creates a temporary data directory with a storage.Provider.
func TestDataDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dataDir := t.TempDir()
	fs, err := storage.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	return dataDir, fs
}

// TestService creates a recording service over a temporary data directory.
func TestService(t *testing.T) (*recording.Service, string) {
	t.Helper()
	dataDir, fs := TestDataDir(t)
	svc := NewServiceAt(t, fs)
	return svc, dataDir
}

// NewServiceAt constructs a service over an existing provider. Useful for
// restart scenarios that reopen the same data directory.
func NewServiceAt(t *testing.T, fs storage.Provider) *recording.Service {
	t.Helper()
	svc, err := recording.NewService(metastore.New(fs), audiostore.New(fs), backup.New(fs))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}
