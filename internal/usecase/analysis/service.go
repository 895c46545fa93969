package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	domainrepo "github.com/johnquangdev/transcript-assistant/internal/domain/repositories"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

// Cache stores serialized analysis results
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ObjectStore uploads rendered analyses
type ObjectStore interface {
	UploadText(ctx context.Context, objectName string, content string) error
}

// Options tune a single analysis request
type Options struct {
	// Upload stores the analysis as analyses/<id>.md
	Upload bool
	// Refresh skips the cache lookup; the fresh result still replaces the cached one
	Refresh bool
}

// Service runs LLM analyses of transcripts and prices them
type Service interface {
	Analyze(ctx context.Context, transcriptID uuid.UUID, opts Options) (*entities.Analysis, error)
	AnalyzeText(ctx context.Context, text string) (*entities.Analysis, error)
	Latest(ctx context.Context, transcriptID uuid.UUID) (*entities.Analysis, error)
	List(ctx context.Context, transcriptID uuid.UUID) ([]entities.Analysis, error)
}

// Deps groups the collaborators of the analysis service. Only Analyzer is
// required for AnalyzeText; the repositories are needed for stored
// transcripts. Cache and Store are optional.
type Deps struct {
	Transcripts domainrepo.TranscriptRepository
	Analyses    domainrepo.AnalysisRepository
	Analyzer    ai.Analyzer
	Cache       Cache
	CacheTTL    time.Duration
	Store       ObjectStore
	Logger      *zap.Logger
}

type analysisService struct {
	Deps
}

// NewService constructs the analysis service
func NewService(deps Deps) Service {
	return &analysisService{Deps: deps}
}

// ObjectName returns the storage key of an uploaded analysis
func ObjectName(id uuid.UUID) string {
	return fmt.Sprintf("analyses/%s.md", id)
}

// CacheKey identifies an analysis by provider, model and transcript text
func CacheKey(provider, model, text string) string {
	sum := sha256.Sum256([]byte(provider + "|" + model + "|" + text))
	return hex.EncodeToString(sum[:])
}

// Analyze analyzes a stored transcript and records the result
func (s *analysisService) Analyze(ctx context.Context, transcriptID uuid.UUID, opts Options) (*entities.Analysis, error) {
	transcript, err := s.Transcripts.FindByID(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find transcript", err)
	}
	if transcript == nil {
		return nil, errors.ErrTranscriptNotFound(transcriptID.String())
	}

	analysis, err := s.run(ctx, transcript.Text, opts.Refresh)
	if err != nil {
		return nil, err
	}
	analysis.TranscriptID = &transcript.ID

	if opts.Upload {
		if s.Store == nil {
			return nil, errors.ErrInvalidArgument("object storage is not configured")
		}
		key := ObjectName(analysis.ID)
		if err := s.Store.UploadText(ctx, key, analysis.Content); err != nil {
			return nil, errors.ErrStorageFailed("upload analysis", err)
		}
		analysis.ObjectKey = key
	}

	if err := s.Analyses.Create(ctx, analysis); err != nil {
		return nil, errors.ErrDBQueryFailed("create analysis", err)
	}

	if s.Logger != nil {
		s.Logger.Info("analysis stored",
			zap.String("analysis_id", analysis.ID.String()),
			zap.String("transcript_id", transcript.ID.String()),
			zap.String("provider", analysis.Provider),
			zap.String("model", analysis.Model),
			zap.Int("prompt_tokens", analysis.PromptTokens),
			zap.Int("output_tokens", analysis.OutputTokens),
			zap.Float64("cost_usd", analysis.CostUSD),
			zap.Bool("cached", analysis.Cached),
		)
	}
	return analysis, nil
}

// AnalyzeText analyzes a transcript that is not stored. The result is
// cached but not persisted.
func (s *analysisService) AnalyzeText(ctx context.Context, text string) (*entities.Analysis, error) {
	return s.run(ctx, text, false)
}

// Latest returns the most recent analysis of a transcript
func (s *analysisService) Latest(ctx context.Context, transcriptID uuid.UUID) (*entities.Analysis, error) {
	analysis, err := s.Analyses.FindLatestByTranscriptID(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find analysis", err)
	}
	if analysis == nil {
		return nil, errors.ErrAnalysisNotFound(transcriptID.String())
	}
	return analysis, nil
}

// List returns every analysis of a transcript, newest first
func (s *analysisService) List(ctx context.Context, transcriptID uuid.UUID) ([]entities.Analysis, error) {
	transcript, err := s.Transcripts.FindByID(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find transcript", err)
	}
	if transcript == nil {
		return nil, errors.ErrTranscriptNotFound(transcriptID.String())
	}

	analyses, err := s.Analyses.ListByTranscriptID(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list analyses", err)
	}
	return analyses, nil
}

func (s *analysisService) run(ctx context.Context, text string, refresh bool) (*entities.Analysis, error) {
	if s.Analyzer == nil {
		return nil, errors.ErrAIServiceUnavailable("analysis")
	}
	if strings.TrimSpace(text) == "" {
		appErr := errors.ErrInvalidArgument("transcript is empty")
		appErr.Raw = entities.ErrEmptyTranscript
		return nil, appErr
	}

	key := CacheKey(s.Analyzer.Provider(), s.Analyzer.Model(), text)
	if !refresh {
		if res, ok := s.cached(ctx, key); ok {
			analysis := s.fromResult(res, key)
			analysis.Cached = true
			return analysis, nil
		}
	}

	started := time.Now()
	res, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Error("analysis failed",
				zap.String("provider", s.Analyzer.Provider()),
				zap.String("model", s.Analyzer.Model()),
				zap.Error(err),
			)
		}
		return nil, errors.ErrAIAnalysisFailed(err)
	}

	analysis := s.fromResult(res, key)
	analysis.DurationMs = time.Since(started).Milliseconds()
	s.store(ctx, key, res)
	return analysis, nil
}

func (s *analysisService) fromResult(res ai.Result, key string) *entities.Analysis {
	analysis := entities.NewAnalysis(nil, res.Provider, res.Model, res.Content)
	analysis.PromptTokens = res.Usage.PromptTokens
	analysis.OutputTokens = res.Usage.OutputTokens
	analysis.CostUSD = s.Analyzer.Pricing().Cost(res.Usage.PromptTokens, res.Usage.OutputTokens)
	analysis.CacheKey = key
	return analysis
}

// cached reads a result from the cache. Cache failures are logged and
// treated as a miss.
func (s *analysisService) cached(ctx context.Context, key string) (ai.Result, bool) {
	if s.Cache == nil {
		return ai.Result{}, false
	}
	raw, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.warn("analysis cache read failed", key, errors.ErrCacheFailed("get", err))
		return ai.Result{}, false
	}
	if !ok {
		return ai.Result{}, false
	}
	var res ai.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		s.warn("analysis cache entry corrupt", key, err)
		return ai.Result{}, false
	}
	return res, true
}

func (s *analysisService) store(ctx context.Context, key string, res ai.Result) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		s.warn("analysis cache encode failed", key, err)
		return
	}
	if err := s.Cache.Set(ctx, key, string(raw), s.CacheTTL); err != nil {
		s.warn("analysis cache write failed", key, errors.ErrCacheFailed("set", err))
	}
}

func (s *analysisService) warn(msg, key string, err error) {
	if s.Logger != nil {
		s.Logger.Warn(msg, zap.String("cache_key", key), zap.Error(err))
	}
}
