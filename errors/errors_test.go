package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_WrapsCause(t *testing.T) {
	cause := stdErrors.New("permission denied")
	err := ErrInputNotFound("/tmp/call.json", cause)

	if !stdErrors.Is(err, cause) {
		t.Fatal("cause not reachable through errors.Is")
	}
	if err.HTTPCode != http.StatusNotFound {
		t.Fatalf("unexpected http code %d", err.HTTPCode)
	}
	if !strings.Contains(err.Error(), "INPUT_NOT_FOUND") || !strings.Contains(err.Error(), "permission denied") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("build: %w", ErrMalformedSegment(2, "start", `{"text":"hi"}`, nil))
	code, ok := CodeOf(wrapped)
	if !ok || code != ErrorCode_MALFORMED_SEGMENT {
		t.Fatalf("unexpected code %s, %v", code, ok)
	}

	if _, ok := CodeOf(stdErrors.New("plain")); ok {
		t.Fatal("plain error should carry no code")
	}
}

func TestWithDetail_DoesNotMutateOriginal(t *testing.T) {
	base := ErrInputMalformed("missing key", nil)
	withPath := base.WithDetail("path", "a.json")

	if _, ok := base.Details["path"]; ok {
		t.Fatal("original error was mutated")
	}
	if withPath.Details["path"] != "a.json" {
		t.Fatalf("detail not set: %v", withPath.Details)
	}
}

func TestErrorCode_MarshalText(t *testing.T) {
	text, err := ErrorCode_TRANSCRIPT_NOT_FOUND.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "TRANSCRIPT_NOT_FOUND" {
		t.Fatalf("unexpected text %s", text)
	}
	if ErrorCode(42).String() == "" {
		t.Fatal("unknown codes should still render")
	}
}
