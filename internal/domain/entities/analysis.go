package entities

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is an LLM summary of a transcript together with its token usage
// and estimated cost
type Analysis struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID *uuid.UUID `json:"transcript_id,omitempty" gorm:"type:uuid;index"`
	Provider     string     `json:"provider" gorm:"type:varchar(50);not null"`
	Model        string     `json:"model" gorm:"type:varchar(100);not null"`
	Content      string     `json:"content" gorm:"type:text;not null"`
	PromptTokens int        `json:"prompt_tokens"`
	OutputTokens int        `json:"output_tokens"`
	CostUSD      float64    `json:"cost_usd"`
	CacheKey     string     `json:"-" gorm:"type:varchar(64);index"`
	ObjectKey    string     `json:"object_key,omitempty" gorm:"type:varchar(512)"`
	DurationMs   int64      `json:"duration_ms"`
	Cached       bool       `json:"cached" gorm:"-"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}

// TotalTokens is prompt plus output tokens
func (a *Analysis) TotalTokens() int {
	return a.PromptTokens + a.OutputTokens
}

// NewAnalysis creates a new analysis record
func NewAnalysis(transcriptID *uuid.UUID, provider, model, content string) *Analysis {
	return &Analysis{
		ID:           uuid.New(),
		TranscriptID: transcriptID,
		Provider:     provider,
		Model:        model,
		Content:      content,
		CreatedAt:    time.Now(),
	}
}
