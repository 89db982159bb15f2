package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nexus/internal/render"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard headline figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), stats)
				}
				return render.Stats(cmd.OutOrStdout(), stats)
			})
		},
	}
}
