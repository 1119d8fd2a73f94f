package errors

import (
	"fmt"
	"time"
)

// AppError is the custom error type for the application. ExitCode is the
// process exit status used when the error aborts the run.
type AppError struct {
	Raw       error
	ExitCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Configuration Errors
func ErrConfiguration(err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 1,
		Code:     ErrorCode_CONFIGURATION,
		Message:  "Invalid configuration",
	}
}

func ErrMissingEnv(vars string) AppError {
	return AppError{
		ExitCode: 1,
		Code:     ErrorCode_CONFIGURATION,
		Message:  fmt.Sprintf("Missing required environment variables: %s", vars),
	}
}

// Transcript Errors
func ErrTranscriptNotFound(dir string) AppError {
	return AppError{
		ExitCode: 1,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "No transcript file found",
	}.WithDetail("dir", dir).
		WithDetail("hint", fmt.Sprintf("place a .txt transcript in %s or pass a filename", dir))
}

func ErrTranscriptRead(path string, err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 1,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "Failed to read transcript file",
	}.WithDetail("path", path)
}

// URL Errors
func ErrURLParse(url string) AppError {
	return AppError{
		ExitCode: 1,
		Code:     ErrorCode_URL_PARSE,
		Message:  "Could not extract page ID from URL",
	}.WithDetail("url", url)
}

// Extraction Errors
func ErrExtraction(err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 1,
		Code:     ErrorCode_EXTRACTION,
		Message:  "Transcript extraction failed",
	}
}

// Entity Linking Errors. Never fatal: unresolved names pass through as plain
// text, so ExitCode is zero and callers only log these.
func ErrEntityLink(name string, err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 0,
		Code:     ErrorCode_ENTITY_LINK,
		Message:  "Entity resolution failed",
	}.WithDetail("name", name)
}

// Page Update Errors
func ErrContentTooLarge(size, limit int) AppError {
	return AppError{
		ExitCode: 1,
		Code:     ErrorCode_CONTENT_TOO_LARGE,
		Message:  "Appended content would exceed the remote field capacity",
	}.WithDetail("size", fmt.Sprintf("%d", size)).
		WithDetail("limit", fmt.Sprintf("%d", limit))
}

func ErrNotionAPI(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 1,
		Code:     ErrorCode_NOTION_API,
		Message:  fmt.Sprintf("Notion API call failed: %s", operation),
	}
}

// Transcription Errors
func ErrTranscription(err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 1,
		Code:     ErrorCode_TRANSCRIPTION,
		Message:  "Audio transcription failed",
	}
}

// Storage Errors
func ErrStorage(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		ExitCode: 0,
		Code:     ErrorCode_STORAGE,
		Message:  fmt.Sprintf("Transcript archive failed: %s", operation),
	}
}
