package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mbraun/recyourself/internal/audiostore"
)

// PublicHandler serves materialized audio files as static content.
type PublicHandler struct {
	dataDir string
}

// NewPublicHandler creates a handler rooted at the data directory.
func NewPublicHandler(dataDir string) *PublicHandler {
	return &PublicHandler{dataDir: dataDir}
}

func (h *PublicHandler) publicPath() string {
	return filepath.Join(h.dataDir, audiostore.PublicDir)
}

// safeName validates that the filename is a plain name (no path separators,
// no traversal) and returns the absolute path under the public dir.
func (h *PublicHandler) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	abs := filepath.Join(h.publicPath(), cleaned)
	if !strings.HasPrefix(abs, h.publicPath()+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes public directory")
	}
	return abs, nil
}

// ServeFile handles GET /public/{filename}.
func (h *PublicHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	abs, err := h.safeName(filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}
