package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/johnquangdev/transcript-assistant/internal/adapter/dto/analysis"
	"github.com/johnquangdev/transcript-assistant/internal/adapter/presenter"
	analysisuse "github.com/johnquangdev/transcript-assistant/internal/usecase/analysis"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

// Analysis handles analysis and cost endpoints
type Analysis struct {
	svc     analysisuse.Service
	pricing ai.PriceTable
	logger  *zap.Logger
}

// NewAnalysis creates a new analysis handler. pricing is the rate card used
// by the cost endpoint.
func NewAnalysis(svc analysisuse.Service, pricing ai.PriceTable, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, pricing: pricing, logger: logger}
}

// Analyze runs an LLM analysis of a stored transcript
// @Summary      Analyze transcript
// @Description  Sends the transcript to the configured LLM and returns the analysis with token usage and estimated cost. Identical transcripts are served from cache unless refresh is set.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true   "Transcript ID (UUID)"
// @Param        request  body      analysis.AnalyzeRequest  false  "Options"
// @Success      201      {object}  analysis.AnalysisResponse
// @Failure      404      {object}  map[string]interface{}  "Transcript not found"
// @Failure      502      {object}  map[string]interface{}  "LLM call failed"
// @Failure      503      {object}  map[string]interface{}  "No LLM configured"
// @Router       /transcripts/{id}/analysis [post]
func (h *Analysis) Analyze(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dto.AnalyzeRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return HandleError(h.logger, c, err)
		}
	}

	result, err := h.svc.Analyze(c.Request().Context(), id, analysisuse.Options{
		Upload:  req.Upload,
		Refresh: req.Refresh,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToAnalysisResponse(result))
}

// Latest returns the most recent analysis of a transcript
// @Summary      Get latest analysis
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  analysis.AnalysisResponse
// @Failure      404  {object}  map[string]interface{}  "No analysis yet"
// @Router       /transcripts/{id}/analysis [get]
func (h *Analysis) Latest(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.svc.Latest(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(result))
}

// List returns every analysis of a transcript, newest first
// @Summary      List analyses
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {array}   analysis.AnalysisResponse
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id}/analyses [get]
func (h *Analysis) List(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	analyses, err := h.svc.List(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponses(analyses))
}

// Cost estimates the price of an LLM call
// @Summary      Estimate cost
// @Description  Prices prompt and output tokens. Above 128000 total tokens the long-context rates apply to both.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      analysis.CostRequest  true  "Token usage"
// @Success      200      {object}  analysis.CostResponse
// @Failure      400      {object}  map[string]interface{}  "Negative token count"
// @Router       /cost [post]
func (h *Analysis) Cost(c echo.Context) error {
	var req dto.CostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToCostResponse(h.pricing, req.PromptTokens, req.OutputTokens))
}
