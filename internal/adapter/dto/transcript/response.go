package transcript

import (
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

// TranscriptResponse represents a stored transcript
type TranscriptResponse struct {
	ID             uuid.UUID            `json:"id"`
	Source         string               `json:"source,omitempty"`
	Text           string               `json:"text"`
	Paragraphs     []entities.Paragraph `json:"paragraphs"`
	SpeakerLabels  map[string]string    `json:"speaker_labels,omitempty"`
	SegmentCount   int                  `json:"segment_count"`
	ParagraphCount int                  `json:"paragraph_count"`
	SpeakerCount   int                  `json:"speaker_count"`
	DownloadURL    string               `json:"download_url,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
