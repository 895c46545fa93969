package analysis

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzeRequest tunes an analysis run
type AnalyzeRequest struct {
	Upload  bool `json:"upload"`
	Refresh bool `json:"refresh"`
}

// AnalysisResponse represents an LLM analysis with its usage and cost
type AnalysisResponse struct {
	ID           uuid.UUID  `json:"id"`
	TranscriptID *uuid.UUID `json:"transcript_id,omitempty"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model"`
	Content      string     `json:"content"`
	PromptTokens int        `json:"prompt_tokens"`
	OutputTokens int        `json:"output_tokens"`
	TotalTokens  int        `json:"total_tokens"`
	CostUSD      float64    `json:"cost_usd"`
	Cached       bool       `json:"cached"`
	DurationMs   int64      `json:"duration_ms"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CostRequest holds the token usage to price
type CostRequest struct {
	PromptTokens int `json:"prompt_tokens" validate:"gte=0"`
	OutputTokens int `json:"output_tokens" validate:"gte=0"`
}

// CostResponse is the estimated cost of a call
type CostResponse struct {
	PromptTokens int     `json:"prompt_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	Tier         string  `json:"tier"`
	CostUSD      float64 `json:"cost_usd"`
}
