package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/mbraun/recyourself/internal/recording"
)

// NewRouter creates a chi router with all API routes mounted.
// dataDir is used to resolve the public audio directory.
func NewRouter(svc *recording.Service, dataDir string) chi.Router {
	h := NewHandler(svc)
	ph := NewPublicHandler(dataDir)

	r := chi.NewRouter()

	// Recordings CRUD.
	r.Post("/recordings", h.CreateRecording)
	r.Get("/recordings", h.ListRecordings)
	r.Put("/recordings/{id}", h.UpdateRecording)
	r.Delete("/recordings/{id}", h.DeleteRecording)

	// On-demand snapshot.
	r.Post("/backup", h.Backup)

	// Materialized audio files.
	r.Get("/public/{filename}", ph.ServeFile)

	return r
}
