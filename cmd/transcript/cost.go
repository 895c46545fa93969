package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/pkg/ai"
)

func newCostCmd() *cobra.Command {
	var (
		promptTokens int
		outputTokens int
		provider     string
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate the USD cost of an LLM call from its token usage",
		Long: `Cost prices prompt and output tokens with the provider's rate card.
For Gemini Flash, calls above 128000 total tokens are billed at the
long-context rates for both prompt and output tokens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptTokens < 0 || outputTokens < 0 {
				return errors.ErrInvalidArgument("token counts must not be negative")
			}
			pricing, err := priceTable(provider)
			if err != nil {
				return err
			}

			tier := "base"
			if pricing.UsesLongRates(promptTokens, outputTokens) {
				tier = "long"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated cost of parsing: $%.6f (%d prompt + %d output tokens, %s rates)\n",
				pricing.Cost(promptTokens, outputTokens), promptTokens, outputTokens, tier)
			return nil
		},
	}

	cmd.Flags().IntVar(&promptTokens, "prompt-tokens", 0, "prompt (input) tokens")
	cmd.Flags().IntVar(&outputTokens, "output-tokens", 0, "output (candidate) tokens")
	cmd.Flags().StringVar(&provider, "provider", ai.ProviderGemini, "rate card: gemini or groq")
	return cmd
}

func priceTable(provider string) (ai.PriceTable, error) {
	switch strings.ToLower(provider) {
	case ai.ProviderGemini:
		return ai.GeminiFlashPricing, nil
	case ai.ProviderGroq:
		return ai.GroqLlamaPricing, nil
	default:
		return ai.PriceTable{}, errors.ErrInvalidArgument(fmt.Sprintf("unknown provider %q", provider))
	}
}
