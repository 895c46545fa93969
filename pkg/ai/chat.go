package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Provider names
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Default endpoints and models. Both providers expose an OpenAI compatible
// chat completions API.
const (
	GeminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai"
	GeminiDefaultModel = "gemini-1.5-flash"
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	GroqDefaultModel   = "llama-3.1-70b-versatile"
)

// ChatConfig configures a ChatAnalyzer. APIKey is required; empty fields
// fall back to the provider defaults.
type ChatConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ChatAnalyzer analyzes transcripts through a chat completions endpoint
type ChatAnalyzer struct {
	client   *openai.Client
	provider string
	model    string
	cfg      ChatConfig
	pricing  PriceTable
}

// NewChatAnalyzer creates an analyzer for the configured provider
func NewChatAnalyzer(cfg ChatConfig) (*ChatAnalyzer, error) {
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}

	var (
		baseURL string
		model   string
		pricing PriceTable
	)
	switch cfg.Provider {
	case ProviderGemini:
		baseURL, model, pricing = GeminiBaseURL, GeminiDefaultModel, GeminiFlashPricing
	case ProviderGroq:
		baseURL, model, pricing = GroqBaseURL, GroqDefaultModel, GroqLlamaPricing
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Provider)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is not set", cfg.Provider)
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = baseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &ChatAnalyzer{
		client:   openai.NewClientWithConfig(clientCfg),
		provider: cfg.Provider,
		model:    model,
		cfg:      cfg,
		pricing:  pricing,
	}, nil
}

// Provider returns the provider name
func (a *ChatAnalyzer) Provider() string { return a.provider }

// Model returns the model used for completions
func (a *ChatAnalyzer) Model() string { return a.model }

// Pricing returns the rate card of the configured provider
func (a *ChatAnalyzer) Pricing() PriceTable { return a.pricing }

// Analyze sends the transcript wrapped in the analysis prompt and returns the
// assistant content together with token usage
func (a *ChatAnalyzer) Analyze(ctx context.Context, transcript string) (Result, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildAnalysisPrompt(transcript)},
		},
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("%s chat completion: %w", a.provider, err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("empty response from %s", a.provider)
	}

	model := resp.Model
	if model == "" {
		model = a.model
	}
	return Result{
		Content:  resp.Choices[0].Message.Content,
		Provider: a.provider,
		Model:    model,
		Usage: Usage{
			PromptTokens: resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}
