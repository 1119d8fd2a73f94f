package entities

import "errors"

// Domain errors
var (
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrNoTranscriptFiles  = errors.New("no transcript files found")
	ErrSelectionCancelled = errors.New("transcript selection cancelled")
	ErrNoRichTextProperty = errors.New("page has no rich text property to update")
)
