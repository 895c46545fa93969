package main

import (
	"path/filepath"
	"testing"

	"github.com/johnquangdev/transcript-assistant/errors"
)

func TestReplaceExt(t *testing.T) {
	cases := []struct {
		path, ext, want string
	}{
		{"meeting.json", ".txt", "meeting.txt"},
		{"out/meeting.v2.json", ".txt", "out/meeting.v2.txt"},
		{"meeting", ".txt", "meeting.txt"},
		{"meeting.txt", ".analysis.md", "meeting.analysis.md"},
	}
	for _, tc := range cases {
		if got := replaceExt(tc.path, tc.ext); got != tc.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tc.path, tc.ext, got, tc.want)
		}
	}
}

func TestReadInputMissing(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.txt"))
	if code, ok := errors.CodeOf(err); !ok || code != errors.ErrorCode_INPUT_NOT_FOUND {
		t.Fatalf("expected INPUT_NOT_FOUND, got %v", err)
	}
}
