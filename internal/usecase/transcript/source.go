package transcript

import (
	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

// SegmentsFromAssemblyAI converts the utterances of a completed AssemblyAI
// transcript into diarization segments. Start offsets are converted from
// milliseconds to seconds and letter speakers ("A", "B", ...) are renamed to
// SPEAKER_00, SPEAKER_01, ... so speaker overrides apply to them. Missing
// fields stay missing and are rejected when the transcript is built.
func SegmentsFromAssemblyAI(t aai.Transcript) []entities.Segment {
	segments := make([]entities.Segment, 0, len(t.Utterances))
	for _, utt := range t.Utterances {
		seg := entities.Segment{Text: utt.Text}
		if utt.Start != nil {
			seg.Start = entities.SecondsTimestamp(float64(*utt.Start) / 1000.0)
		}
		if utt.Speaker != nil {
			speaker := NormalizeSpeaker(*utt.Speaker)
			seg.Speaker = &speaker
		}
		segments = append(segments, seg)
	}
	return segments
}

// NormalizeSpeaker maps single-letter speaker ids to the SPEAKER_NN scheme.
// Any other id is returned unchanged.
func NormalizeSpeaker(speaker string) string {
	if len(speaker) == 1 && speaker[0] >= 'A' && speaker[0] <= 'Z' {
		return entities.RawSpeakerID(int(speaker[0] - 'A'))
	}
	return speaker
}
