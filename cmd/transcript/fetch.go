package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	transcriptuse "github.com/johnquangdev/transcript-assistant/internal/usecase/transcript"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

func newFetchCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fetch <assemblyai_transcript_id>",
		Short: "Download a diarization document from AssemblyAI",
		Long: `Fetch waits for an AssemblyAI transcript to complete and writes its
utterances as a diarization document that "transcript build" accepts.
Letter speakers (A, B, ...) become SPEAKER_00, SPEAKER_01, ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = args[0] + ".json"
			}
			return a.fetchDocument(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <id>.json)")
	return cmd
}

func (a *app) assemblyAI() (*ai.AssemblyAIClient, error) {
	if a.cfg.AssemblyAI.APIKey == "" {
		return nil, errors.ErrAIServiceUnavailable("assemblyai")
	}
	return ai.NewAssemblyAIClient(ai.AssemblyAIConfig{
		APIKey:            a.cfg.AssemblyAI.APIKey,
		BaseURL:           a.cfg.AssemblyAI.BaseURL,
		WebhookURL:        a.cfg.AssemblyAI.WebhookURL,
		WebhookAuthHeader: a.cfg.AssemblyAI.WebhookAuthHeader,
		WebhookSecret:     a.cfg.AssemblyAI.WebhookSecret,
		PollTimeout:       a.cfg.AssemblyAI.PollTimeout,
	}), nil
}

func (a *app) fetchDocument(ctx context.Context, transcriptID, output string) error {
	client, err := a.assemblyAI()
	if err != nil {
		return err
	}

	a.logger.Info("waiting for assemblyai transcript", zap.String("assemblyai_id", transcriptID))
	remote, err := client.WaitForCompletion(ctx, transcriptID)
	if err != nil {
		return errors.ErrAITranscriptionFailed(err)
	}

	segments := transcriptuse.SegmentsFromAssemblyAI(remote)
	doc, err := json.MarshalIndent(entities.NewDiarizationDocument(segments), "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := writeOutput(output, string(doc)); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	a.logger.Info("Document written to "+output, zap.Int("segment_count", len(segments)))
	return nil
}
