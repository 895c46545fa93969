package errors

import "fmt"

// ErrorCode identifies a failure class across the CLI and the HTTP API
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 1100
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 1101
	ErrorCode_FORBIDDEN          ErrorCode = 1102

	// Transcript input
	ErrorCode_INPUT_NOT_FOUND      ErrorCode = 2000
	ErrorCode_INPUT_MALFORMED      ErrorCode = 2001
	ErrorCode_MALFORMED_SEGMENT    ErrorCode = 2002
	ErrorCode_TRANSCRIPT_NOT_FOUND ErrorCode = 2003

	// AI
	ErrorCode_AI_ANALYSIS_FAILED      ErrorCode = 3000
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3001
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3002
	ErrorCode_ANALYSIS_NOT_FOUND      ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 4001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4002

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 5000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_TOKEN:              "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:              "AUTH_TOKEN_EXPIRED",
	ErrorCode_FORBIDDEN:                       "FORBIDDEN",
	ErrorCode_INPUT_NOT_FOUND:                 "INPUT_NOT_FOUND",
	ErrorCode_INPUT_MALFORMED:                 "INPUT_MALFORMED",
	ErrorCode_MALFORMED_SEGMENT:               "MALFORMED_SEGMENT",
	ErrorCode_TRANSCRIPT_NOT_FOUND:            "TRANSCRIPT_NOT_FOUND",
	ErrorCode_AI_ANALYSIS_FAILED:              "AI_ANALYSIS_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:         "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_ANALYSIS_NOT_FOUND:              "ANALYSIS_NOT_FOUND",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}

// MarshalText renders the code by name in JSON responses
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
