package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnquangdev/transcript-assistant/errors"
)

func TestParseDocument(t *testing.T) {
	cases := []struct {
		name     string
		doc      string
		wantCode errors.ErrorCode
		wantLen  int
	}{
		{name: "valid", doc: conversation, wantLen: 4},
		{name: "extra fields ignored", doc: `{"id": 7, "output": {"language": "en", "segments": [{"text": "hi", "start": 1, "speaker": "SPEAKER_00", "end": 2}]}}`, wantLen: 1},
		{name: "invalid json", doc: `{"output": `, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "missing output", doc: `{"result": {}}`, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "missing segments", doc: `{"output": {}}`, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "null segments", doc: `{"output": {"segments": null}}`, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "trailing data", doc: `{"output": {"segments": []}} {not json`, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "second document", doc: `{"output": {"segments": []}} {"output": {"segments": []}}`, wantCode: errors.ErrorCode_INPUT_MALFORMED},
		{name: "trailing whitespace", doc: "{\"output\": {\"segments\": []}}\n\n", wantLen: 0},
		{name: "wrongly typed segment field", doc: `{"output": {"segments": [{"text": 5, "start": 1, "speaker": "SPEAKER_00"}]}}`, wantLen: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := ParseDocument(strings.NewReader(tc.doc))
			if tc.wantCode != errors.ErrorCode_UNSPECIFIED {
				code, ok := errors.CodeOf(err)
				if !ok || code != tc.wantCode {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segments) != tc.wantLen {
				t.Fatalf("expected %d segments, got %d", tc.wantLen, len(segments))
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "call.json")
	if err := os.WriteFile(path, []byte(conversation), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	segments, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}

	_, err = LoadDocument(filepath.Join(dir, "missing.json"))
	if code, _ := errors.CodeOf(err); code != errors.ErrorCode_INPUT_NOT_FOUND {
		t.Fatalf("expected INPUT_NOT_FOUND, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"output": {}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err = LoadDocument(bad)
	appErr, ok := err.(errors.AppError)
	if !ok || appErr.Code != errors.ErrorCode_INPUT_MALFORMED {
		t.Fatalf("expected INPUT_MALFORMED, got %v", err)
	}
	if appErr.Details["path"] != bad {
		t.Fatalf("path not reported: %v", appErr.Details)
	}
}
