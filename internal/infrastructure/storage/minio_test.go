package storage

import "testing"

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"transcripts/abc.txt": "text/plain; charset=utf-8",
		"analyses/abc.md":     "text/markdown; charset=utf-8",
		"analyses/abc.MD":     "text/markdown; charset=utf-8",
		"documents/abc.json":  "application/json",
		"transcripts/no-ext":  "text/plain; charset=utf-8",
	}
	for name, want := range cases {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", name, got, want)
		}
	}
}
