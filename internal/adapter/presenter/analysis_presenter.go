package presenter

import (
	"github.com/johnquangdev/transcript-assistant/internal/adapter/dto/analysis"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

// ToAnalysisResponse converts an Analysis entity to AnalysisResponse DTO
func ToAnalysisResponse(a *entities.Analysis) *analysis.AnalysisResponse {
	if a == nil {
		return nil
	}
	return &analysis.AnalysisResponse{
		ID:           a.ID,
		TranscriptID: a.TranscriptID,
		Provider:     a.Provider,
		Model:        a.Model,
		Content:      a.Content,
		PromptTokens: a.PromptTokens,
		OutputTokens: a.OutputTokens,
		TotalTokens:  a.TotalTokens(),
		CostUSD:      a.CostUSD,
		Cached:       a.Cached,
		DurationMs:   a.DurationMs,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAnalysisResponses converts a list of analyses, keeping their order
func ToAnalysisResponses(list []entities.Analysis) []*analysis.AnalysisResponse {
	out := make([]*analysis.AnalysisResponse, 0, len(list))
	for i := range list {
		out = append(out, ToAnalysisResponse(&list[i]))
	}
	return out
}

// ToCostResponse prices token usage with the given rate card
func ToCostResponse(pricing ai.PriceTable, promptTokens, outputTokens int) *analysis.CostResponse {
	tier := "base"
	if pricing.UsesLongRates(promptTokens, outputTokens) {
		tier = "long"
	}
	return &analysis.CostResponse{
		PromptTokens: promptTokens,
		OutputTokens: outputTokens,
		TotalTokens:  promptTokens + outputTokens,
		Tier:         tier,
		CostUSD:      pricing.Cost(promptTokens, outputTokens),
	}
}
