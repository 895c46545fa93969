package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	domainrepo "github.com/johnquangdev/transcript-assistant/internal/domain/repositories"
)

// AnalysisRepository handles analysis data operations
type AnalysisRepository struct {
	db *gorm.DB
}

var _ domainrepo.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create inserts an analysis
func (r *AnalysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}
	return r.db.WithContext(ctx).Create(analysis).Error
}

// FindLatestByTranscriptID returns the most recent analysis of a transcript
func (r *AnalysisRepository) FindLatestByTranscriptID(ctx context.Context, transcriptID uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).
		Where("transcript_id = ?", transcriptID).
		Order("created_at DESC").
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

// ListByTranscriptID returns every analysis of a transcript, newest first
func (r *AnalysisRepository) ListByTranscriptID(ctx context.Context, transcriptID uuid.UUID) ([]entities.Analysis, error) {
	var analyses []entities.Analysis
	err := r.db.WithContext(ctx).
		Where("transcript_id = ?", transcriptID).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
