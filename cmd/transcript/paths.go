package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/johnquangdev/transcript-assistant/errors"
)

// replaceExt swaps the extension of path for ext. A path without an
// extension gets ext appended.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// readInput reads a whole input file, reporting a missing or unreadable
// file as INPUT_NOT_FOUND
func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.ErrInputNotFound(path, err)
	}
	return string(b), nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
