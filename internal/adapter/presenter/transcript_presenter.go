package presenter

import (
	"github.com/johnquangdev/transcript-assistant/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse DTO
func ToTranscriptResponse(t *entities.Transcript, downloadURL string) *transcript.TranscriptResponse {
	if t == nil {
		return nil
	}

	paragraphs := t.Paragraphs.Data()
	if paragraphs == nil {
		paragraphs = []entities.Paragraph{}
	}

	return &transcript.TranscriptResponse{
		ID:             t.ID,
		Source:         t.Source,
		Text:           t.Text,
		Paragraphs:     paragraphs,
		SpeakerLabels:  t.SpeakerLabels.Data(),
		SegmentCount:   t.SegmentCount,
		ParagraphCount: t.ParagraphCount,
		SpeakerCount:   t.SpeakerCount,
		DownloadURL:    downloadURL,
		CreatedAt:      t.CreatedAt,
	}
}
