package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/cache"
	analysisuse "github.com/johnquangdev/transcript-assistant/internal/usecase/analysis"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

type analyzeOptions struct {
	output   string
	provider string
	model    string
	cache    bool
	upload   bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <txt_file>",
		Short: "Summarize a transcript and score the meeting with an LLM",
		Long: `Analyze sends a built transcript to the configured LLM and writes a
summary, talk-time metrics and feedback as Markdown. The estimated cost of
the call is printed from the provider's token usage.

Credentials come from GEMINI_API_KEY or GROQ_API_KEY depending on the provider.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: <input>.analysis.md)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "LLM provider: gemini or groq (default from ANALYSIS_PROVIDER)")
	cmd.Flags().StringVar(&opts.model, "model", "", "model name (default from ANALYSIS_MODEL or the provider default)")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "reuse and store results in Redis")
	cmd.Flags().BoolVar(&opts.upload, "upload", false, "also upload the analysis to object storage")
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, input string, opts *analyzeOptions) error {
	text, err := readInput(input)
	if err != nil {
		return err
	}

	analysisCfg := a.cfg.Analysis
	if opts.provider != "" {
		analysisCfg.Provider = strings.ToLower(opts.provider)
	}
	if opts.model != "" {
		analysisCfg.Model = opts.model
	}

	analyzer, err := ai.NewChatAnalyzer(ai.ChatConfig{
		Provider:    analysisCfg.Provider,
		APIKey:      analysisCfg.APIKey(),
		BaseURL:     analysisCfg.BaseURL,
		Model:       analysisCfg.Model,
		Temperature: analysisCfg.Temperature,
		MaxTokens:   analysisCfg.MaxTokens,
		Timeout:     analysisCfg.Timeout,
	})
	if err != nil {
		return err
	}

	deps := analysisuse.Deps{Analyzer: analyzer, Logger: a.logger}
	if opts.cache {
		client, err := cache.NewRedisClient(a.cfg)
		if err != nil {
			a.logger.Warn("redis unavailable, analyzing without cache", zap.Error(err))
		} else {
			defer client.Close()
			deps.Cache = cache.NewRedisStore(client, a.logger)
			deps.CacheTTL = a.cfg.Redis.AnalysisTTL
		}
	}

	result, err := analysisuse.NewService(deps).AnalyzeText(cmd.Context(), text)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = replaceExt(input, ".analysis.md")
	}
	if err := writeOutput(output, result.Content); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	a.logger.Info("Analysis written to "+output,
		zap.String("provider", result.Provider),
		zap.String("model", result.Model),
		zap.Int("prompt_tokens", result.PromptTokens),
		zap.Int("output_tokens", result.OutputTokens),
		zap.Bool("cached", result.Cached),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "Estimated cost of parsing: $%.6f\n", result.CostUSD)

	if opts.upload {
		url, err := a.upload(cmd.Context(), "analyses/"+filepath.Base(output), result.Content)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
	}
	return nil
}
