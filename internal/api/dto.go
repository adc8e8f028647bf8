package api

// CreateRecordingRequest is the request body for creating a recording.
// Audio is either a data:audio/...;base64 URI (materialized to a file) or an
// opaque inline value stored verbatim.
type CreateRecordingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Audio       string `json:"audio"`
}

// UpdateRecordingRequest is the request body for updating a recording. Both
// fields are written exactly as sent; there is no partial-patch merging.
type UpdateRecordingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}

// BackupResponse reports the location of a new snapshot.
type BackupResponse struct {
	Backup string `json:"backup"`
}
