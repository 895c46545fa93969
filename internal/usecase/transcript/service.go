package transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	domainrepo "github.com/johnquangdev/transcript-assistant/internal/domain/repositories"
)

// ObjectStore uploads rendered artifacts
type ObjectStore interface {
	UploadText(ctx context.Context, objectName string, content string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// CreateInput describes a transcript to build and store
type CreateInput struct {
	Source   string
	Segments []entities.Segment
	Speakers []string
	Upload   bool
}

// Service builds transcripts and keeps track of them
type Service interface {
	Create(ctx context.Context, in CreateInput) (*entities.Transcript, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)
	FindBySource(ctx context.Context, source string) (*entities.Transcript, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DownloadURL(ctx context.Context, t *entities.Transcript, expiry time.Duration) (string, error)
}

type transcriptService struct {
	repo   domainrepo.TranscriptRepository
	store  ObjectStore
	logger *zap.Logger
}

// NewService constructs a transcript service. store may be nil when object
// storage is not configured.
func NewService(repo domainrepo.TranscriptRepository, store ObjectStore, logger *zap.Logger) Service {
	return &transcriptService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// ObjectName returns the storage key of a rendered transcript
func ObjectName(id uuid.UUID) string {
	return fmt.Sprintf("transcripts/%s.txt", id)
}

// Create builds the transcript, uploads it when requested and persists the
// record. Nothing is stored if any step fails.
func (s *transcriptService) Create(ctx context.Context, in CreateInput) (*entities.Transcript, error) {
	labels := entities.NewSpeakerLabelMap(in.Speakers)

	paragraphs, err := Paragraphs(in.Segments, labels)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("rejected malformed segments",
				zap.String("source", in.Source),
				zap.Int("segment_count", len(in.Segments)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	record := entities.NewTranscript(in.Source, Render(paragraphs), paragraphs, labels, len(in.Segments))

	if in.Upload {
		if s.store == nil {
			return nil, errors.ErrInvalidArgument("object storage is not configured")
		}
		key := ObjectName(record.ID)
		if err := s.store.UploadText(ctx, key, record.Text); err != nil {
			return nil, errors.ErrStorageFailed("upload transcript", err)
		}
		record.ObjectKey = key
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, errors.ErrDBQueryFailed("create transcript", err)
	}

	if s.logger != nil {
		s.logger.Info("transcript created",
			zap.String("transcript_id", record.ID.String()),
			zap.String("source", record.Source),
			zap.Int("segment_count", record.SegmentCount),
			zap.Int("paragraph_count", record.ParagraphCount),
			zap.Int("speaker_count", record.SpeakerCount),
			zap.String("object_key", record.ObjectKey),
		)
	}

	return record, nil
}

// Get returns a stored transcript
func (s *transcriptService) Get(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find transcript", err)
	}
	if record == nil {
		return nil, errors.ErrTranscriptNotFound(id.String())
	}
	return record, nil
}

// FindBySource returns the transcript stored for source, or nil if there is none
func (s *transcriptService) FindBySource(ctx context.Context, source string) (*entities.Transcript, error) {
	record, err := s.repo.FindBySource(ctx, source)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find transcript by source", err)
	}
	return record, nil
}

// Delete removes a transcript together with its analyses. Uploaded objects
// are left in the bucket.
func (s *transcriptService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.ErrDBQueryFailed("delete transcript", err)
	}
	if s.logger != nil {
		s.logger.Info("transcript deleted", zap.String("transcript_id", id.String()))
	}
	return nil
}

// DownloadURL returns a presigned URL for an uploaded transcript, or an
// empty string when it was never uploaded
func (s *transcriptService) DownloadURL(ctx context.Context, t *entities.Transcript, expiry time.Duration) (string, error) {
	if t == nil || t.ObjectKey == "" || s.store == nil {
		return "", nil
	}
	url, err := s.store.GetFileURL(ctx, t.ObjectKey, expiry)
	if err != nil {
		return "", errors.ErrStorageFailed("presign transcript", err)
	}
	return url, nil
}
