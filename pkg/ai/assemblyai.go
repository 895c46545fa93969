package ai

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
)

// AssemblyAIConfig configures the diarization source client
type AssemblyAIConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests
	BaseURL string
	// WebhookURL, when set, is called by AssemblyAI once a submitted
	// transcript completes. WebhookAuthHeader/WebhookSecret are sent back
	// with the call so the receiver can authenticate it.
	WebhookURL        string
	WebhookAuthHeader string
	WebhookSecret     string

	PollInitialInterval time.Duration
	PollMaxInterval     time.Duration
	PollTimeout         time.Duration
}

// AssemblyAIClient submits audio for speaker-labelled transcription and
// retrieves completed transcripts
type AssemblyAIClient struct {
	client *aai.Client
	cfg    AssemblyAIConfig
}

var errTranscriptPending = stdErrors.New("transcript still processing")

// maxConsecutivePollErrors bounds how long polling tolerates failing requests
const maxConsecutivePollErrors = 3

// NewAssemblyAIClient creates an AssemblyAI client using the provided config
func NewAssemblyAIClient(cfg AssemblyAIConfig) *AssemblyAIClient {
	opts := []aai.ClientOption{aai.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.PollInitialInterval <= 0 {
		cfg.PollInitialInterval = 3 * time.Second
	}
	if cfg.PollMaxInterval <= 0 {
		cfg.PollMaxInterval = 30 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 30 * time.Minute
	}
	return &AssemblyAIClient{
		client: aai.NewClientWithOptions(opts...),
		cfg:    cfg,
	}
}

// Submit queues an audio URL for transcription with speaker labels and
// returns the transcript id
func (c *AssemblyAIClient) Submit(ctx context.Context, audioURL string, speakersExpected int) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if speakersExpected > 0 {
		params.SpeakersExpected = aai.Int64(int64(speakersExpected))
	}
	if c.cfg.WebhookURL != "" {
		params.WebhookURL = aai.String(c.cfg.WebhookURL)
		if c.cfg.WebhookAuthHeader != "" && c.cfg.WebhookSecret != "" {
			params.WebhookAuthHeaderName = aai.String(c.cfg.WebhookAuthHeader)
			params.WebhookAuthHeaderValue = aai.String(c.cfg.WebhookSecret)
		}
	}

	transcript, err := c.client.Transcripts.SubmitFromURL(ctx, audioURL, params)
	if err != nil {
		return "", fmt.Errorf("submit transcript: %w", err)
	}
	if transcript.ID == nil {
		return "", fmt.Errorf("assemblyai returned no transcript id")
	}
	return *transcript.ID, nil
}

// Get fetches a transcript once, whatever its status
func (c *AssemblyAIClient) Get(ctx context.Context, transcriptID string) (aai.Transcript, error) {
	return c.client.Transcripts.Get(ctx, transcriptID)
}

// WaitForCompletion polls a transcript with exponential backoff until it
// completes, fails, or the poll timeout elapses
func (c *AssemblyAIClient) WaitForCompletion(ctx context.Context, transcriptID string) (aai.Transcript, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.PollInitialInterval
	bo.MaxInterval = c.cfg.PollMaxInterval
	bo.MaxElapsedTime = c.cfg.PollTimeout

	var (
		result     aai.Transcript
		failures   int
		lastStatus aai.TranscriptStatus
	)
	poll := func() error {
		transcript, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			failures++
			if failures >= maxConsecutivePollErrors {
				return backoff.Permanent(fmt.Errorf("get transcript: %w", err))
			}
			return err
		}
		failures = 0
		lastStatus = transcript.Status

		switch transcript.Status {
		case aai.TranscriptStatusCompleted:
			result = transcript
			return nil
		case aai.TranscriptStatusError:
			msg := "unknown error"
			if transcript.Error != nil {
				msg = *transcript.Error
			}
			return backoff.Permanent(fmt.Errorf("transcript %s failed: %s", transcriptID, msg))
		default:
			return errTranscriptPending
		}
	}

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		if stdErrors.Is(err, errTranscriptPending) {
			return aai.Transcript{}, fmt.Errorf("transcript %s not completed (status %q): %w", transcriptID, lastStatus, err)
		}
		return aai.Transcript{}, err
	}
	return result, nil
}
