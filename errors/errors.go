package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type shared by the CLI and the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
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

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// CodeOf returns the code of the first AppError in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Code, true
	}
	return ErrorCode_UNSPECIFIED, false
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_PAYLOAD,
		Message:   "Invalid payload",
		Timestamp: time.Now(),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode:  http.StatusUnauthorized,
		Code:      ErrorCode_UNAUTHENTICATED,
		Message:   "Authentication required",
		Timestamp: time.Now(),
	}
}

// Authentication Errors
func ErrInvalidToken(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusUnauthorized,
		Code:      ErrorCode_AUTH_INVALID_TOKEN,
		Message:   "Invalid authentication token",
		Timestamp: time.Now(),
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode:  http.StatusUnauthorized,
		Code:      ErrorCode_AUTH_TOKEN_EXPIRED,
		Message:   "Authentication token expired",
		Timestamp: time.Now(),
	}
}

func ErrForbidden(scope string) AppError {
	return AppError{
		HTTPCode:  http.StatusForbidden,
		Code:      ErrorCode_FORBIDDEN,
		Message:   "Token lacks the required scope",
		Timestamp: time.Now(),
	}.WithDetail("scope", scope)
}

// Transcript Input Errors

// ErrInputNotFound reports a source document that is missing or unreadable.
func ErrInputNotFound(path string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_INPUT_NOT_FOUND,
		Message:   "Input document not found or unreadable",
		Timestamp: time.Now(),
	}.WithDetail("path", path)
}

// ErrInputMalformed reports a document lacking the expected structure,
// e.g. no output.segments list.
func ErrInputMalformed(reason string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INPUT_MALFORMED,
		Message:   fmt.Sprintf("Input document is malformed: %s", reason),
		Timestamp: time.Now(),
	}
}

// ErrMalformedSegment reports a segment with a missing field or a start
// value that is not a number.
func ErrMalformedSegment(index int, field, segment string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_MALFORMED_SEGMENT,
		Message:   fmt.Sprintf("Segment %d is malformed: invalid or missing %q", index, field),
		Timestamp: time.Now(),
	}.WithDetail("index", fmt.Sprintf("%d", index)).
		WithDetail("field", field).
		WithDetail("segment", segment)
}

func ErrTranscriptNotFound(transcriptID string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:   "Transcript not found",
		Timestamp: time.Now(),
	}.WithDetail("transcript_id", transcriptID)
}

// AI Analysis Errors
func ErrAIAnalysisFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadGateway,
		Code:      ErrorCode_AI_ANALYSIS_FAILED,
		Message:   "AI analysis failed",
		Timestamp: time.Now(),
	}
}

func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadGateway,
		Code:      ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:   "Audio transcription failed",
		Timestamp: time.Now(),
	}
}

func ErrAIServiceUnavailable(service string) AppError {
	return AppError{
		HTTPCode:  http.StatusServiceUnavailable,
		Code:      ErrorCode_AI_SERVICE_UNAVAILABLE,
		Message:   "AI service not configured",
		Timestamp: time.Now(),
	}.WithDetail("service", service)
}

func ErrAnalysisNotFound(transcriptID string) AppError {
	return AppError{
		HTTPCode:  http.StatusNotFound,
		Code:      ErrorCode_ANALYSIS_NOT_FOUND,
		Message:   "Analysis not found",
		Timestamp: time.Now(),
	}.WithDetail("transcript_id", transcriptID)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:   fmt.Sprintf("Storage operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:   fmt.Sprintf("Cache operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusBadGateway,
		Code:      ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		Message:   fmt.Sprintf("External API call failed: %s", service),
		Timestamp: time.Now(),
	}
}

// Database Errors
func ErrDBConnectionFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_DB_CONNECTION_FAILED,
		Message:   "Database connection failed",
		Timestamp: time.Now(),
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_DB_QUERY_FAILED,
		Message:   "Database query failed",
		Timestamp: time.Now(),
	}.WithDetail("query", query)
}
