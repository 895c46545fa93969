package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for built transcripts.
// Lookups return (nil, nil) when no record exists.
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)
	FindBySource(ctx context.Context, source string) (*entities.Transcript, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalysisRepository defines persistence operations for LLM analyses
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entities.Analysis) error
	FindLatestByTranscriptID(ctx context.Context, transcriptID uuid.UUID) (*entities.Analysis, error)
	ListByTranscriptID(ctx context.Context, transcriptID uuid.UUID) ([]entities.Analysis, error)
}
