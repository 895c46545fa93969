package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Timestamp is a segment start offset in seconds exactly as the diarization
// service emitted it. Services disagree on whether it is a JSON number or a
// decimal string, so the literal is kept and parsed on demand.
type Timestamp string

// UnmarshalJSON accepts both `1.5` and `"1.5"`
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Timestamp(s)
		return nil
	}
	*t = Timestamp(b)
	return nil
}

// MarshalJSON writes numeric timestamps as numbers and anything else as a string
func (t Timestamp) MarshalJSON() ([]byte, error) {
	literal := []byte(strings.TrimSpace(string(t)))
	if _, err := t.Seconds(); err == nil && json.Valid(literal) {
		return literal, nil
	}
	return json.Marshal(string(t))
}

// Seconds parses the timestamp as a float
func (t Timestamp) Seconds() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("timestamp %q is not a number", string(t))
	}
	return v, nil
}

// SecondsTimestamp formats a float offset as a Timestamp
func SecondsTimestamp(seconds float64) *Timestamp {
	t := Timestamp(strconv.FormatFloat(seconds, 'f', -1, 64))
	return &t
}

// Segment is one timestamped, speaker-attributed utterance from a diarization
// document. Fields are pointers so a missing key can be told apart from an
// empty value; any other keys in the source object are ignored.
type Segment struct {
	Text    *string    `json:"text"`
	Start   *Timestamp `json:"start"`
	Speaker *string    `json:"speaker"`

	raw     json.RawMessage
	invalid *FieldError
}

// FieldError records a segment field that was present but of the wrong type
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// UnmarshalJSON decodes a segment without failing the enclosing document
// when a field has the wrong type. The problem is kept for Invalid so the
// builder can report the segment by index.
func (s *Segment) UnmarshalJSON(b []byte) error {
	*s = Segment{raw: append(json.RawMessage(nil), b...)}

	var fields struct {
		Text    json.RawMessage `json:"text"`
		Start   json.RawMessage `json:"start"`
		Speaker json.RawMessage `json:"speaker"`
	}
	if err := json.Unmarshal(b, &fields); err != nil {
		s.invalid = &FieldError{Field: "segment", Err: err}
		return nil
	}

	var err error
	if s.Text, err = decodeString(fields.Text); err != nil {
		s.invalid = &FieldError{Field: "text", Err: err}
		return nil
	}
	if s.Speaker, err = decodeString(fields.Speaker); err != nil {
		s.invalid = &FieldError{Field: "speaker", Err: err}
		return nil
	}
	if !isNull(fields.Start) {
		var ts Timestamp
		if err := ts.UnmarshalJSON(fields.Start); err != nil {
			s.invalid = &FieldError{Field: "start", Err: err}
			return nil
		}
		s.Start = &ts
	}
	return nil
}

// Invalid returns the wrongly typed field found while decoding, if any
func (s Segment) Invalid() *FieldError {
	return s.invalid
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("expected a string, got %s", raw)
	}
	return &v, nil
}

// NewSegment builds a fully populated segment
func NewSegment(text string, start float64, speaker string) Segment {
	return Segment{
		Text:    &text,
		Start:   SecondsTimestamp(start),
		Speaker: &speaker,
	}
}

// String renders the segment as JSON for error reports. Decoded segments
// are reported exactly as they appeared in the document.
func (s Segment) String() string {
	if len(s.raw) > 0 {
		return string(s.raw)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%+v", struct {
			Text, Start, Speaker any
		}{s.Text, s.Start, s.Speaker})
	}
	return string(b)
}

// DiarizationDocument is the envelope produced by the diarization service:
// {"output": {"segments": [...]}}
type DiarizationDocument struct {
	Output *DiarizationOutput `json:"output"`
}

// DiarizationOutput holds the segment list of a diarization document
type DiarizationOutput struct {
	Segments *[]Segment `json:"segments"`
}

// NewDiarizationDocument wraps segments in the service envelope
func NewDiarizationDocument(segments []Segment) DiarizationDocument {
	return DiarizationDocument{Output: &DiarizationOutput{Segments: &segments}}
}

// Paragraph is a maximal run of consecutive segments sharing one effective
// speaker label. Text is the segment texts joined by single spaces.
type Paragraph struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SpeakerLabelMap maps raw speaker ids (SPEAKER_00, ...) to display names
type SpeakerLabelMap map[string]string

// NewSpeakerLabelMap assigns the Nth label to SPEAKER_<N>, N zero-padded to
// two digits and counted from zero. Ids beyond the list stay unmapped; ids
// that do not follow the SPEAKER_NN scheme are never mapped.
func NewSpeakerLabelMap(labels []string) SpeakerLabelMap {
	if len(labels) == 0 {
		return nil
	}
	m := make(SpeakerLabelMap, len(labels))
	for i, label := range labels {
		m[RawSpeakerID(i)] = label
	}
	return m
}

// RawSpeakerID returns the diarization id for the speaker at index i
func RawSpeakerID(i int) string {
	return fmt.Sprintf("SPEAKER_%02d", i)
}

// Resolve returns the display label for a raw id, or the id itself
func (m SpeakerLabelMap) Resolve(raw string) string {
	if label, ok := m[raw]; ok {
		return label
	}
	return raw
}
