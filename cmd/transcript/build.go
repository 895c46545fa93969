package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/internal/domain/entities"
	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/storage"
	transcriptuse "github.com/johnquangdev/transcript-assistant/internal/usecase/transcript"
)

type buildOptions struct {
	output   string
	speakers []string
	upload   bool
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <json_file>",
		Short: "Build a transcript from a diarization document",
		Long: `Build reads a diarization document, orders its segments by start time and
merges consecutive segments of the same speaker into paragraphs.

The transcript is written next to the input with a .txt extension unless
--output is given. Each --speakers flag names the next speaker in order,
replacing SPEAKER_00, SPEAKER_01, ...; names may contain commas:

  transcript build call.json -s Alice -s "Smith, John"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: input with .txt extension)")
	cmd.Flags().StringArrayVarP(&opts.speakers, "speakers", "s", nil, "display name for the next speaker (repeatable: SPEAKER_00, SPEAKER_01, ...)")
	cmd.Flags().BoolVar(&opts.upload, "upload", false, "also upload the transcript to object storage")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, input string, opts *buildOptions) error {
	segments, err := transcriptuse.LoadDocument(input)
	if err != nil {
		return err
	}

	text, err := transcriptuse.BuildTranscript(segments, entities.NewSpeakerLabelMap(opts.speakers))
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = replaceExt(input, ".txt")
	}
	if text == "" {
		a.logger.Warn("transcript is empty", zap.String("input", input), zap.Int("segment_count", len(segments)))
	}
	if err := writeOutput(output, text); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	a.logger.Info("Transcript written to "+output, zap.Int("segment_count", len(segments)))

	if opts.upload {
		url, err := a.upload(cmd.Context(), "transcripts/"+filepath.Base(output), text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
	}
	return nil
}

// upload stores content in the configured bucket and returns a presigned URL
func (a *app) upload(ctx context.Context, objectName, content string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := storage.NewMinIOClient(ctx, &a.cfg.Storage)
	if err != nil {
		return "", errors.ErrStorageFailed("connect", err)
	}
	if err := client.UploadText(ctx, objectName, content); err != nil {
		return "", errors.ErrStorageFailed("upload", err)
	}
	a.logger.Info("uploaded", zap.String("bucket", a.cfg.Storage.BucketName), zap.String("object", objectName))

	url, err := client.GetFileURL(ctx, objectName, a.cfg.Storage.URLExpiry)
	if err != nil {
		return "", errors.ErrStorageFailed("presign", err)
	}
	return url, nil
}
