package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	pkgvalidator "github.com/johnquangdev/transcript-assistant/pkg/validator"
)

func newSubmitCmd(a *app) *cobra.Command {
	var (
		speakers int
		wait     bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "submit <audio_url>",
		Short: "Submit audio to AssemblyAI for speaker-labelled transcription",
		Long: `Submit queues a publicly reachable audio URL with speaker labels enabled
and prints the AssemblyAI transcript id. With --wait it also waits for the
result and writes the diarization document, like "transcript fetch".

When ASSEMBLYAI_WEBHOOK_URL is set, AssemblyAI calls it on completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioURL := args[0]
			if err := pkgvalidator.New().Var(audioURL, "required,url"); err != nil {
				return errors.ErrInvalidArgument(fmt.Sprintf("invalid audio URL %q", audioURL))
			}
			if speakers < 0 {
				return errors.ErrInvalidArgument("--speakers must not be negative")
			}

			client, err := a.assemblyAI()
			if err != nil {
				return err
			}
			id, err := client.Submit(cmd.Context(), audioURL, speakers)
			if err != nil {
				return errors.ErrExternalAPIFailed("assemblyai", err)
			}
			a.logger.Info("submitted", zap.String("assemblyai_id", id), zap.String("audio_url", audioURL))
			fmt.Fprintln(cmd.OutOrStdout(), id)

			if !wait {
				return nil
			}
			if output == "" {
				output = id + ".json"
			}
			return a.fetchDocument(cmd.Context(), id, output)
		},
	}

	cmd.Flags().IntVar(&speakers, "speakers", 0, "expected number of speakers (0: let AssemblyAI decide)")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for completion and write the diarization document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "document path with --wait (default: <id>.json)")
	return cmd
}
