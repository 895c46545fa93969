package transcript

import (
	"encoding/json"
	"io"
	"os"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

// ParseDocument decodes a diarization document and returns its
// output.segments list. The segments themselves are not validated here;
// that happens when the transcript is built.
func ParseDocument(r io.Reader) ([]entities.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ErrInputMalformed("unreadable document", err)
	}
	var doc entities.DiarizationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.ErrInputMalformed("invalid JSON", err)
	}
	if doc.Output == nil {
		return nil, errors.ErrInputMalformed("missing \"output\" key", nil)
	}
	if doc.Output.Segments == nil {
		return nil, errors.ErrInputMalformed("missing \"output.segments\" key", nil)
	}
	return *doc.Output.Segments, nil
}

// LoadDocument reads and parses a diarization document from disk
func LoadDocument(path string) ([]entities.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ErrInputNotFound(path, err)
	}
	defer f.Close()

	segments, err := ParseDocument(f)
	if err != nil {
		if appErr, ok := err.(errors.AppError); ok {
			return nil, appErr.WithDetail("path", path)
		}
		return nil, err
	}
	return segments, nil
}
