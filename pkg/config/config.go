package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/johnquangdev/transcript-assistant/pkg/validator"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	AssemblyAI AssemblyAIConfig
	Analysis   AnalysisConfig
	JWT        JWTConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production test"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10" validate:"gte=0"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"transcript_assistant"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25" validate:"gte=1"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5" validate:"gte=0"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds Redis configuration. Analyses are cached for AnalysisTTL.
type RedisConfig struct {
	Enabled     bool          `envconfig:"REDIS_ENABLED" default:"true"`
	Host        string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port        string        `envconfig:"REDIS_PORT" default:"6379"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	AnalysisTTL time.Duration `envconfig:"ANALYSIS_CACHE_TTL" default:"24h"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Enabled         bool          `envconfig:"STORAGE_ENABLED" default:"true"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"transcripts"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	URLExpiry       time.Duration `envconfig:"STORAGE_URL_EXPIRY" default:"1h"`
}

// AssemblyAIConfig holds the diarization source configuration
type AssemblyAIConfig struct {
	APIKey            string        `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL           string        `envconfig:"ASSEMBLYAI_BASE_URL"`
	WebhookURL        string        `envconfig:"ASSEMBLYAI_WEBHOOK_URL"`
	WebhookAuthHeader string        `envconfig:"ASSEMBLYAI_WEBHOOK_AUTH_HEADER" default:"X-Webhook-Secret"`
	WebhookSecret     string        `envconfig:"ASSEMBLYAI_WEBHOOK_SECRET"`
	PollTimeout       time.Duration `envconfig:"ASSEMBLYAI_POLL_TIMEOUT" default:"30m"`
}

// AnalysisConfig selects and configures the LLM used for transcript analysis
type AnalysisConfig struct {
	Provider     string        `envconfig:"ANALYSIS_PROVIDER" default:"gemini" validate:"oneof=gemini groq"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GroqAPIKey   string        `envconfig:"GROQ_API_KEY"`
	Model        string        `envconfig:"ANALYSIS_MODEL"`
	BaseURL      string        `envconfig:"ANALYSIS_BASE_URL"`
	Temperature  float32       `envconfig:"ANALYSIS_TEMPERATURE" default:"0.3" validate:"gte=0,lte=2"`
	MaxTokens    int           `envconfig:"ANALYSIS_MAX_TOKENS" default:"0" validate:"gte=0"`
	Timeout      time.Duration `envconfig:"ANALYSIS_TIMEOUT" default:"2m"`
}

// JWTConfig holds the service token configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"transcript-assistant"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// APIKey returns the key of the configured analysis provider
func (c AnalysisConfig) APIKey() string {
	switch strings.ToLower(c.Provider) {
	case "groq":
		return c.GroqAPIKey
	default:
		return c.GeminiAPIKey
	}
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
