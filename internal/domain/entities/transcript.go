package entities

import "time"

// Transcript is a raw meeting transcript. It is read once from disk (or
// produced by audio transcription) and never mutated afterwards.
type Transcript struct {
	SourcePath string    `json:"source_path"`
	Text       string    `json:"text"`
	ByteLen    int       `json:"byte_len"`
	ModTime    time.Time `json:"mod_time"`
}
