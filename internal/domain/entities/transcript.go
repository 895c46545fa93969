package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Transcript is the stored result of building a transcript from a diarization document
type Transcript struct {
	ID             uuid.UUID                             `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Source         string                                `json:"source,omitempty" gorm:"type:varchar(255);index"`
	Text           string                                `json:"text" gorm:"type:text"`
	Paragraphs     datatypes.JSONType[[]Paragraph]       `json:"paragraphs" gorm:"type:jsonb"`
	SpeakerLabels  datatypes.JSONType[map[string]string] `json:"speaker_labels,omitempty" gorm:"type:jsonb"`
	SegmentCount   int                                   `json:"segment_count"`
	ParagraphCount int                                   `json:"paragraph_count"`
	SpeakerCount   int                                   `json:"speaker_count"`
	ObjectKey      string                                `json:"object_key,omitempty" gorm:"type:varchar(512)"`
	CreatedAt      time.Time                             `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time                             `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a transcript record from built paragraphs
func NewTranscript(source, text string, paragraphs []Paragraph, labels SpeakerLabelMap, segmentCount int) *Transcript {
	speakers := make(map[string]struct{}, len(paragraphs))
	for _, p := range paragraphs {
		speakers[p.Speaker] = struct{}{}
	}
	if paragraphs == nil {
		paragraphs = []Paragraph{}
	}
	return &Transcript{
		ID:             uuid.New(),
		Source:         source,
		Text:           text,
		Paragraphs:     datatypes.NewJSONType(paragraphs),
		SpeakerLabels:  datatypes.NewJSONType(map[string]string(labels)),
		SegmentCount:   segmentCount,
		ParagraphCount: len(paragraphs),
		SpeakerCount:   len(speakers),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}
