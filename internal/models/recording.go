// Package models defines the domain types for RecYourSelf.
package models

import (
	"strings"
	"time"
)

// CreatedAtLayout is the fixed de-DE style timestamp format stamped on every
// recording at creation time.
const CreatedAtLayout = "02.01.2006 15:04:05"

// PublicPathPrefix marks an audio value as a reference to a materialized file
// served from the public directory. The prefix is assigned at create time; a
// value without it is an inline payload stored verbatim.
const PublicPathPrefix = "/public/"

// Recording is the persisted entity: a voice recording with its metadata.
// ID, Audio, and CreatedAt are immutable after creation.
type Recording struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Audio       string `json:"audio"`
	CreatedAt   string `json:"createdAt"`
}

// AudioIsFileRef reports whether Audio references a materialized file on disk
// rather than an inline payload.
func (r Recording) AudioIsFileRef() bool {
	return strings.HasPrefix(r.Audio, PublicPathPrefix)
}

// NewCreatedAt formats ts in the canonical createdAt layout.
func NewCreatedAt(ts time.Time) string {
	return ts.Format(CreatedAtLayout)
}
