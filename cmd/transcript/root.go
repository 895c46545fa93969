package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/pkg/config"
	pkglogger "github.com/johnquangdev/transcript-assistant/pkg/logger"
)

// app carries what every subcommand needs once the root command has run
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "transcript",
		Short: "Build and analyze speaker-grouped meeting transcripts",
		Long: `transcript turns diarization output ({"output": {"segments": [...]}})
into a readable transcript with one paragraph per speaker turn, and can send
the result to an LLM for a summary, talk-time metrics and feedback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := pkglogger.New(cfg.Server.Environment)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newCostCmd())
	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newSubmitCmd(a))
	root.AddCommand(newTokenCmd(a))
	root.AddCommand(newMigrateCmd(a))
	return root
}
