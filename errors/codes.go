package errors

// ErrorCode classifies application errors.
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_CONFIGURATION
	ErrorCode_TRANSCRIPT_NOT_FOUND
	ErrorCode_URL_PARSE
	ErrorCode_EXTRACTION
	ErrorCode_ENTITY_LINK
	ErrorCode_CONTENT_TOO_LARGE
	ErrorCode_NOTION_API
	ErrorCode_TRANSCRIPTION
	ErrorCode_STORAGE
)

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_CONFIGURATION:
		return "CONFIGURATION"
	case ErrorCode_TRANSCRIPT_NOT_FOUND:
		return "TRANSCRIPT_NOT_FOUND"
	case ErrorCode_URL_PARSE:
		return "URL_PARSE"
	case ErrorCode_EXTRACTION:
		return "EXTRACTION"
	case ErrorCode_ENTITY_LINK:
		return "ENTITY_LINK"
	case ErrorCode_CONTENT_TOO_LARGE:
		return "CONTENT_TOO_LARGE"
	case ErrorCode_NOTION_API:
		return "NOTION_API"
	case ErrorCode_TRANSCRIPTION:
		return "TRANSCRIPTION"
	case ErrorCode_STORAGE:
		return "STORAGE"
	default:
		return "INTERNAL"
	}
}
