// Package api implements the RecYourSelf REST API using chi.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mbraun/recyourself/internal/apperr"
	"github.com/mbraun/recyourself/internal/recording"
)

// Audio payloads arrive base64-embedded in the JSON body.
const maxBodyBytes = 50 << 20 // 50 MB

// Handler holds API route handlers.
type Handler struct {
	svc *recording.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *recording.Service) *Handler {
	return &Handler{svc: svc}
}

// recordingID parses the {id} URL parameter. An unparsable id addresses no
// record and is handled as not found.
func recordingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// CreateRecording handles POST /recordings.
func (h *Handler) CreateRecording(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req CreateRecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	rec, err := h.svc.Create(r.Context(), req.Title, req.Description, req.Audio)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorBody("Missing required fields"))
		case errors.Is(err, apperr.ErrInvalidAudioFormat):
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid audio format"))
		default:
			slog.Error("create recording failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// ListRecordings handles GET /recordings. The response is the bare array in
// insertion order.
func (h *Handler) ListRecordings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// UpdateRecording handles PUT /recordings/{id}.
func (h *Handler) UpdateRecording(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	id, ok := recordingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Recording not found"))
		return
	}
	var req UpdateRecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	rec, err := h.svc.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Recording not found"))
		} else {
			slog.Error("update recording failed", slog.Int("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteRecording handles DELETE /recordings/{id}.
func (h *Handler) DeleteRecording(w http.ResponseWriter, r *http.Request) {
	id, ok := recordingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Recording not found"))
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Recording not found"))
		} else {
			slog.Error("delete recording failed", slog.Int("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Message: "Recording deleted successfully"})
}

// Backup handles POST /backup.
func (h *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	location, err := h.svc.Backup(r.Context())
	if err != nil {
		slog.Error("backup failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, BackupResponse{Backup: location})
}
