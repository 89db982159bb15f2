package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nexus/internal/insights"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

func (a *app) newInsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate AI summaries with Gemini",
		Long: `Generate a natural-language summary of a table with the Gemini API.
Set insights.api_key in config.yaml or NEXUS_INSIGHTS_API_KEY.`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "stock",
		Short: "Summarize inventory and suggest reorder priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				stock, err := store.Stock().Fetch(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch stock: %w", err)
				}
				return a.printInsight(cmd, a.summarizer().StockInsights(cmd.Context(), stock))
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "sales",
		Short: "Identify best sellers and forecast next week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				sales, err := store.Sales().Fetch(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch sales: %w", err)
				}
				return a.printInsight(cmd, a.summarizer().SalesPrediction(cmd.Context(), sales))
			})
		},
	})
	return cmd
}

func (a *app) summarizer() insights.Summarizer {
	return insights.NewGemini(a.settings.apiKey,
		insights.WithModel(a.settings.model),
		insights.WithLogger(a.logger),
	)
}

func (a *app) printInsight(cmd *cobra.Command, text string) error {
	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"insight": text})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
