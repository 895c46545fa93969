package transcript

import "github.com/johnquangdev/transcript-assistant/internal/domain/entities"

// CreateTranscriptRequest builds a transcript from already extracted segments
type CreateTranscriptRequest struct {
	Source   string             `json:"source" validate:"max=255"`
	Segments []entities.Segment `json:"segments" validate:"required"`
	// Speakers are display names; the Nth name replaces SPEAKER_<N>
	Speakers []string `json:"speakers" validate:"omitempty,max=100,dive,required,max=100"`
	Upload   bool     `json:"upload"`
}

// DocumentQuery holds the query parameters of a raw document upload
type DocumentQuery struct {
	Source   string `query:"source" validate:"max=255"`
	Speakers string `query:"speakers"`
	Upload   bool   `query:"upload"`
}
