package ai

import "context"

// Usage reports token consumption of one LLM call
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Total is prompt plus output tokens
func (u Usage) Total() int {
	return u.PromptTokens + u.OutputTokens
}

// Result is the outcome of analyzing a transcript
type Result struct {
	Content  string `json:"content"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Usage    Usage  `json:"usage"`
}

// Analyzer sends a transcript to an LLM and returns its analysis.
// Each call is a single blocking round trip; implementations do not retry.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (Result, error)
	Provider() string
	Model() string
	Pricing() PriceTable
}
