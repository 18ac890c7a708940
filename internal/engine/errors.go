package engine

import "errors"

// Failure classes surfaced by the summarize pipeline. Callers match them with errors.Is.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrGenerationFailure     = errors.New("generation failed")
)
