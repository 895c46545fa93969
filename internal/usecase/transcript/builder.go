package transcript

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

const paragraphSeparator = "\n\n"

// sortableSegment is a validated segment with its parsed start time
type sortableSegment struct {
	text    string
	start   float64
	speaker string
}

// BuildTranscript renders segments as a speaker-grouped transcript. Segments
// are ordered by start time (ties keep input order) and consecutive segments
// with the same effective speaker are merged into one paragraph. An empty
// segment list yields an empty string.
func BuildTranscript(segments []entities.Segment, labels entities.SpeakerLabelMap) (string, error) {
	paragraphs, err := Paragraphs(segments, labels)
	if err != nil {
		return "", err
	}
	return Render(paragraphs), nil
}

// Paragraphs validates, sorts and folds segments into paragraphs.
// Speaker identity is compared after label substitution, so two raw ids
// mapped to the same label share a paragraph.
func Paragraphs(segments []entities.Segment, labels entities.SpeakerLabelMap) ([]entities.Paragraph, error) {
	sorted, err := validate(segments)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(sorted, func(a, b sortableSegment) int {
		return cmp.Compare(a.start, b.start)
	})

	var (
		paragraphs []entities.Paragraph
		texts      []string
	)
	flush := func() {
		if len(texts) == 0 {
			return
		}
		paragraphs[len(paragraphs)-1].Text = strings.Join(texts, " ")
		texts = texts[:0]
	}

	for i, seg := range sorted {
		speaker := labels.Resolve(seg.speaker)
		if i == 0 || speaker != paragraphs[len(paragraphs)-1].Speaker {
			flush()
			paragraphs = append(paragraphs, entities.Paragraph{Speaker: speaker})
		}
		texts = append(texts, seg.text)
	}
	flush()

	return paragraphs, nil
}

// Render joins paragraphs as "<speaker>: <text>" blocks separated by a blank
// line, with trailing whitespace removed.
func Render(paragraphs []entities.Paragraph) string {
	var b strings.Builder
	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString(paragraphSeparator)
		}
		b.WriteString(p.Speaker)
		b.WriteString(": ")
		b.WriteString(p.Text)
		b.WriteByte(' ')
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func validate(segments []entities.Segment) ([]sortableSegment, error) {
	out := make([]sortableSegment, 0, len(segments))
	for i, seg := range segments {
		if bad := seg.Invalid(); bad != nil {
			return nil, errors.ErrMalformedSegment(i, bad.Field, seg.String(), bad.Err)
		}
		if seg.Text == nil {
			return nil, errors.ErrMalformedSegment(i, "text", seg.String(), nil)
		}
		if seg.Speaker == nil {
			return nil, errors.ErrMalformedSegment(i, "speaker", seg.String(), nil)
		}
		if seg.Start == nil {
			return nil, errors.ErrMalformedSegment(i, "start", seg.String(), nil)
		}
		start, err := seg.Start.Seconds()
		if err != nil {
			return nil, errors.ErrMalformedSegment(i, "start", seg.String(), err)
		}
		out = append(out, sortableSegment{text: *seg.Text, start: start, speaker: *seg.Speaker})
	}
	return out, nil
}
