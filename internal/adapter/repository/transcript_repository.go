package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	domainrepo "github.com/johnquangdev/transcript-assistant/internal/domain/repositories"
)

// TranscriptRepository handles transcript data operations
type TranscriptRepository struct {
	db *gorm.DB
}

var _ domainrepo.TranscriptRepository = (*TranscriptRepository)(nil)

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create inserts a built transcript
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Create(transcript).Error
}

// FindByID retrieves a transcript by ID
func (r *TranscriptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// FindBySource retrieves the earliest transcript recorded for a source
func (r *TranscriptRepository) FindBySource(ctx context.Context, source string) (*entities.Transcript, error) {
	var transcript entities.Transcript
	err := r.db.WithContext(ctx).
		Where("source = ?", source).
		Order("created_at ASC").
		First(&transcript).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// Delete removes a transcript and its analyses
func (r *TranscriptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transcript_id = ?", id).Delete(&entities.Analysis{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Transcript{}).Error
	})
}
