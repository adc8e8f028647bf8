// Package audiostore materializes embedded audio payloads as files on disk.
//
// Create-time payloads come in two variants: a MIME-tagged base64 data URI
// (decoded and written under the public directory) or an opaque inline value
// (passed through unmodified by the caller). IsDataURI selects between them.
package audiostore

import (
	"encoding/base64"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mbraun/recyourself/internal/apperr"
	"github.com/mbraun/recyourself/internal/models"
	"github.com/mbraun/recyourself/internal/storage"
)

// PublicDir is the directory inside the data root where materialized audio
// files live. It is served as static content by the HTTP facade.
const PublicDir = "public"

const dataURIPrefix = "data:"

// mimeToExt maps accepted audio MIME types to file extensions. Anything else
// in a data URI is rejected.
var mimeToExt = map[string]string{
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/ogg":   ".ogg",
	"audio/webm":  ".webm",
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// IsDataURI reports whether payload is the MIME-tagged variant that must be
// materialized to a file.
func IsDataURI(payload string) bool {
	return strings.HasPrefix(payload, dataURIPrefix)
}

// Store writes files through a storage provider rooted at the data directory.
type Store struct {
	fs storage.Provider
}

// New creates a Store backed by the given provider.
func New(fs storage.Provider) *Store {
	return &Store{fs: fs}
}

// Store decodes a base64 data URI and writes the bytes to
// public/<title>_<id>.<ext>, returning the /public/... reference the facade
// serves the file under. The declared MIME type must be an accepted audio
// type and the payload must decode; otherwise apperr.ErrInvalidAudioFormat.
func (s *Store) Store(payload, title string, id int) (string, error) {
	data, ext, err := decodeDataURI(payload)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d%s", sanitizeName(title), id, ext)
	if err := s.fs.Write(filepath.Join(PublicDir, name), data); err != nil {
		return "", fmt.Errorf("audiostore: write %s: %w", name, err)
	}
	return models.PublicPathPrefix + name, nil
}

// Remove deletes the file behind a /public/... reference. A missing file is
// not an error; removal is idempotent.
func (s *Store) Remove(ref string) error {
	name := path.Base(ref)
	if name == "" || name == "." || name == "/" {
		return nil
	}
	rel := filepath.Join(PublicDir, name)
	if !s.fs.Exists(rel) {
		return nil
	}
	if err := s.fs.Delete(rel); err != nil {
		return fmt.Errorf("audiostore: remove %s: %w", name, err)
	}
	return nil
}

// decodeDataURI parses a data:<mediatype>;base64,<data> URI, validates the
// declared audio type, and decodes the payload.
func decodeDataURI(uri string) ([]byte, string, error) {
	rest := strings.TrimPrefix(uri, dataURIPrefix)
	commaIdx := strings.Index(rest, ",")
	if commaIdx < 0 {
		return nil, "", fmt.Errorf("%w: missing comma separator", apperr.ErrInvalidAudioFormat)
	}

	meta := rest[:commaIdx]
	encoded := rest[commaIdx+1:]

	if !strings.Contains(meta, ";base64") {
		return nil, "", fmt.Errorf("%w: only base64 data URIs are supported", apperr.ErrInvalidAudioFormat)
	}

	mime := strings.Split(strings.TrimSuffix(meta, ";base64"), ";")[0]
	ext, ok := mimeToExt[mime]
	if !ok {
		return nil, "", fmt.Errorf("%w: unsupported MIME type %q", apperr.ErrInvalidAudioFormat, mime)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid base64 data", apperr.ErrInvalidAudioFormat)
		}
	}
	return data, ext, nil
}

// sanitizeName strips path separators and unsafe characters from a title so
// it can participate in a file name.
func sanitizeName(title string) string {
	name := filepath.Base(title)
	name = unsafeNameRe.ReplaceAllString(name, "_")
	if name == "" || name == "." {
		name = "recording"
	}
	return name
}
