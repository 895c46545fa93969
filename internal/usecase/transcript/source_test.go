package transcript

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

func TestNormalizeSpeaker(t *testing.T) {
	cases := map[string]string{
		"A":          "SPEAKER_00",
		"B":          "SPEAKER_01",
		"K":          "SPEAKER_10",
		"SPEAKER_03": "SPEAKER_03",
		"a":          "a",
		"AB":         "AB",
		"":           "",
	}
	for in, want := range cases {
		if got := NormalizeSpeaker(in); got != want {
			t.Errorf("NormalizeSpeaker(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSegmentsFromAssemblyAI(t *testing.T) {
	tr := aai.Transcript{
		Utterances: []aai.TranscriptUtterance{
			{Speaker: aai.String("B"), Start: aai.Int64(2500), Text: aai.String("and you?")},
			{Speaker: aai.String("A"), Start: aai.Int64(1000), Text: aai.String("fine")},
			{Speaker: aai.String("A"), Text: aai.String("no start")},
		},
	}
	segments := SegmentsFromAssemblyAI(tr)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	start, err := segments[0].Start.Seconds()
	if err != nil || start != 2.5 {
		t.Fatalf("unexpected start %v, %v", start, err)
	}
	if *segments[0].Speaker != "SPEAKER_01" {
		t.Fatalf("unexpected speaker %s", *segments[0].Speaker)
	}
	if segments[2].Start != nil {
		t.Fatal("missing start must stay missing")
	}

	got, err := BuildTranscript(segments[:2], entities.NewSpeakerLabelMap([]string{"Alice", "Bob"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice: fine \n\nBob: and you?" {
		t.Fatalf("unexpected transcript %q", got)
	}
}
