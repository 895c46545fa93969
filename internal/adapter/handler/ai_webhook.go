package handler

import (
	"context"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/adapter/presenter"
	transcriptuse "github.com/johnquangdev/transcript-assistant/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

// TranscriptFetcher retrieves a transcript from AssemblyAI
type TranscriptFetcher interface {
	Get(ctx context.Context, transcriptID string) (aai.Transcript, error)
}

// AIWebhookConfig configures webhook authentication and storage
type AIWebhookConfig struct {
	AuthHeader string
	Secret     string
	Upload     bool
}

// AIWebhookHandler turns AssemblyAI completion callbacks into stored transcripts
type AIWebhookHandler struct {
	fetcher TranscriptFetcher
	svc     transcriptuse.Service
	cfg     AIWebhookConfig
	logger  *zap.Logger
}

type assemblyAIWebhookPayload struct {
	TranscriptID string `json:"transcript_id"`
	Status       string `json:"status"`
}

// NewAIWebhookHandler creates a new handler
func NewAIWebhookHandler(fetcher TranscriptFetcher, svc transcriptuse.Service, cfg AIWebhookConfig, logger *zap.Logger) *AIWebhookHandler {
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = "X-Webhook-Secret"
	}
	return &AIWebhookHandler{fetcher: fetcher, svc: svc, cfg: cfg, logger: logger}
}

// HandleAssemblyAIWebhook receives webhooks from AssemblyAI
// @Summary      AssemblyAI webhook
// @Description  Called by AssemblyAI when a submitted transcript finishes. Completed transcripts are fetched, converted to segments and stored.
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      object{transcript_id=string,status=string}  true  "Webhook payload"
// @Success      200      {object}  map[string]interface{}  "Ignored (not completed) or already stored"
// @Success      201      {object}  transcript.TranscriptResponse
// @Failure      401      {object}  map[string]interface{}  "Bad webhook secret"
// @Failure      502      {object}  map[string]interface{}  "AssemblyAI lookup failed"
// @Router       /webhooks/assemblyai [post]
func (h *AIWebhookHandler) HandleAssemblyAIWebhook(c echo.Context) error {
	if !ai.VerifyWebhookSecret(h.cfg.Secret, c.Request().Header.Get(h.cfg.AuthHeader)) {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var payload assemblyAIWebhookPayload
	if err := c.Bind(&payload); err != nil || payload.TranscriptID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if payload.Status != string(aai.TranscriptStatusCompleted) {
		if h.logger != nil {
			h.logger.Warn("assemblyai transcript not completed",
				zap.String("assemblyai_id", payload.TranscriptID),
				zap.String("status", payload.Status),
			)
		}
		return HandleSuccess(h.logger, c, map[string]interface{}{"status": "ignored"})
	}

	ctx := c.Request().Context()
	source := "assemblyai:" + payload.TranscriptID

	// AssemblyAI redelivers callbacks it did not see acknowledged
	existing, err := h.svc.FindBySource(ctx, source)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if existing != nil {
		if h.logger != nil {
			h.logger.Info("assemblyai transcript already stored",
				zap.String("assemblyai_id", payload.TranscriptID),
				zap.String("transcript_id", existing.ID.String()),
			)
		}
		return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(existing, ""))
	}

	remote, err := h.fetcher.Get(ctx, payload.TranscriptID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExternalAPIFailed("assemblyai", err))
	}
	if remote.Status != aai.TranscriptStatusCompleted {
		return HandleError(h.logger, c, errors.ErrAITranscriptionFailed(nil).WithDetail("status", string(remote.Status)))
	}

	record, err := h.svc.Create(ctx, transcriptuse.CreateInput{
		Source:   source,
		Segments: transcriptuse.SegmentsFromAssemblyAI(remote),
		Upload:   h.cfg.Upload,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToTranscriptResponse(record, ""))
}
