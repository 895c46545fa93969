package ai

// PriceTable holds per-million-token USD rates. When ThresholdTokens is
// positive and prompt+output tokens exceed it, the Long rates apply to both
// prompt and output tokens.
type PriceTable struct {
	ThresholdTokens int
	Base            Rates
	Long            Rates
}

// Rates are USD per one million tokens
type Rates struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// GeminiFlashPricing is the published gemini-1.5-flash rate card
// (https://ai.google.dev/pricing#1_5flash).
var GeminiFlashPricing = PriceTable{
	ThresholdTokens: 128000,
	Base:            Rates{InputPerMillion: 0.075, OutputPerMillion: 0.30},
	Long:            Rates{InputPerMillion: 0.15, OutputPerMillion: 0.60},
}

// GroqLlamaPricing is the flat llama-3.1-70b-versatile rate card on Groq
var GroqLlamaPricing = PriceTable{
	Base: Rates{InputPerMillion: 0.59, OutputPerMillion: 0.79},
}

// UsesLongRates reports whether a call of this size is billed at the Long rates
func (p PriceTable) UsesLongRates(promptTokens, outputTokens int) bool {
	return p.ThresholdTokens > 0 && promptTokens+outputTokens > p.ThresholdTokens
}

// Cost estimates the USD cost of one invocation
func (p PriceTable) Cost(promptTokens, outputTokens int) float64 {
	rates := p.Base
	if p.UsesLongRates(promptTokens, outputTokens) {
		rates = p.Long
	}
	input := float64(promptTokens) / 1e6 * rates.InputPerMillion
	output := float64(outputTokens) / 1e6 * rates.OutputPerMillion
	return input + output
}

// EstimateCost prices a Gemini Flash call from its token usage
func EstimateCost(promptTokens, outputTokens int) float64 {
	return GeminiFlashPricing.Cost(promptTokens, outputTokens)
}
