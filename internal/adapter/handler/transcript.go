package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	dto "github.com/johnquangdev/transcript-assistant/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcript-assistant/internal/adapter/presenter"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	transcriptuse "github.com/johnquangdev/transcript-assistant/internal/usecase/transcript"
)

// Transcript handles transcript endpoints
type Transcript struct {
	svc       transcriptuse.Service
	urlExpiry time.Duration
	logger    *zap.Logger
}

// NewTranscript creates a new transcript handler
func NewTranscript(svc transcriptuse.Service, urlExpiry time.Duration, logger *zap.Logger) *Transcript {
	if urlExpiry <= 0 {
		urlExpiry = time.Hour
	}
	return &Transcript{svc: svc, urlExpiry: urlExpiry, logger: logger}
}

// Create builds a transcript from segments
// @Summary      Build transcript
// @Description  Sorts segments by start time, merges consecutive segments of the same speaker into paragraphs and stores the result
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      transcript.CreateTranscriptRequest  true  "Segments and speaker names"
// @Success      201      {object}  transcript.TranscriptResponse
// @Failure      400      {object}  map[string]interface{}  "Malformed segment or payload"
// @Failure      401      {object}  map[string]interface{}  "Missing or invalid token"
// @Router       /transcripts [post]
func (h *Transcript) Create(c echo.Context) error {
	var req dto.CreateTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.create(c, transcriptuse.CreateInput{
		Source:   req.Source,
		Segments: req.Segments,
		Speakers: req.Speakers,
		Upload:   req.Upload,
	})
}

// CreateFromDocument builds a transcript from a raw diarization document
// @Summary      Build transcript from a diarization document
// @Description  Accepts the diarization service output ({"output": {"segments": [...]}}) as the request body
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        speakers  query     string  false  "Comma separated display names, the Nth replaces SPEAKER_<N>"
// @Param        source    query     string  false  "Free-form origin label"
// @Param        upload    query     bool    false  "Upload the rendered transcript to object storage"
// @Success      201       {object}  transcript.TranscriptResponse
// @Failure      400       {object}  map[string]interface{}  "Malformed document or segment"
// @Router       /transcripts/document [post]
func (h *Transcript) CreateFromDocument(c echo.Context) error {
	var q dto.DocumentQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&q); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	segments, err := transcriptuse.ParseDocument(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.create(c, transcriptuse.CreateInput{
		Source:   q.Source,
		Segments: segments,
		Speakers: splitList(q.Speakers),
		Upload:   q.Upload,
	})
}

// Get returns a stored transcript
// @Summary      Get transcript
// @Tags         Transcripts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  transcript.TranscriptResponse
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id} [get]
func (h *Transcript) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(record, h.downloadURL(c, record)))
}

// Delete removes a transcript and its analyses
// @Summary      Delete transcript
// @Tags         Transcripts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id} [delete]
func (h *Transcript) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"id": id, "deleted": true})
}

func (h *Transcript) create(c echo.Context, in transcriptuse.CreateInput) error {
	record, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToTranscriptResponse(record, h.downloadURL(c, record)))
}

// downloadURL presigns the uploaded transcript; failures only drop the link
func (h *Transcript) downloadURL(c echo.Context, record *entities.Transcript) string {
	url, err := h.svc.DownloadURL(c.Request().Context(), record, h.urlExpiry)
	if err != nil && h.logger != nil {
		h.logger.Warn("presign transcript failed",
			zap.String("transcript_id", record.ID.String()),
			zap.Error(err),
		)
	}
	return url
}
