package apperr

import "errors"

var (
	ErrNotFound           = errors.New("recording not found")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidAudioFormat = errors.New("invalid audio format")
)
