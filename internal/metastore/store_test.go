package metastore

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mbraun/recyourself/internal/models"
	"github.com/mbraun/recyourself/internal/storage"
)

func tempStore(t *testing.T) (*Store, storage.Provider) {
	t.Helper()
	fs, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return New(fs), fs
}

func TestLoadMissingFileIsEmptyList(t *testing.T) {
	s, _ := tempStore(t)
	recs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if recs == nil {
		t.Fatal("expected non-nil empty list")
	}
	if len(recs) != 0 {
		t.Errorf("len = %d, want 0", len(recs))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := tempStore(t)
	in := []models.Recording{
		{ID: 1, Title: "a", Description: "d1", Audio: "/public/a_1.wav", CreatedAt: "01.02.2025 10:11:12"},
		{ID: 2, Title: "b", Description: "d2", Audio: "inline-value", CreatedAt: "01.02.2025 10:11:13"},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSavePreservesInsertionOrder(t *testing.T) {
	s, _ := tempStore(t)
	in := []models.Recording{{ID: 3, Title: "z"}, {ID: 1, Title: "a"}, {ID: 2, Title: "m"}}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, _ := s.Load()
	for i, r := range out {
		if r.ID != in[i].ID {
			t.Errorf("position %d: id = %d, want %d", i, r.ID, in[i].ID)
		}
	}
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	s, fs := tempStore(t)
	if err := fs.Write(DocumentPath, []byte("{not json")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestLoadNullRecordingsIsEmptyList(t *testing.T) {
	s, fs := tempStore(t)
	_ = fs.Write(DocumentPath, []byte(`{"recordings": null}`))
	recs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("recs = %v, want empty list", recs)
	}
}

func TestSaveWritesWrappedDocument(t *testing.T) {
	s, fs := tempStore(t)
	if err := s.Save(nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := fs.Read(DocumentPath)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if _, ok := doc["recordings"]; !ok {
		t.Error("document missing recordings key")
	}
	if !strings.Contains(string(raw), "\n") {
		t.Error("document should be pretty-printed")
	}
}
