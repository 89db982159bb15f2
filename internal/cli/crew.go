package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nexus/internal/pages"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

func (a *app) newCrewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Employees table",
	}
	cmd.AddCommand(a.newListCmd(pages.Crew, "status, department"))
	cmd.AddCommand(a.newCrewEditCmd())
	cmd.AddCommand(a.newCrewDeleteCmd())
	return cmd
}

// crewEdit holds the editable fields; only flags the user set are applied.
type crewEdit struct {
	name       string
	role       string
	department string
	status     string
	email      string
	score      int
}

func (a *app) newCrewEditCmd() *cobra.Command {
	var edit crewEdit
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a crew member",
		Long: `Update the given fields of a crew member. The record is validated before
it is stored; an invalid department, status, email or score is rejected.

Example:
  nexus crew edit c3 --status Active --score 80`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				ctx := cmd.Context()
				member, err := store.Crew().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("get crew member %s: %w", args[0], err)
				}

				changed := cmd.Flags().Changed
				if changed("name") {
					member.Name = edit.name
				}
				if changed("role") {
					member.Role = edit.role
				}
				if changed("department") {
					member.Department = edit.department
				}
				if changed("status") {
					member.Status = edit.status
				}
				if changed("email") {
					member.Email = edit.email
				}
				if changed("score") {
					member.PerformanceScore = edit.score
				}

				if _, err := store.Crew().Set(ctx, member.ID, member); err != nil {
					return fmt.Errorf("update crew member %s: %w", member.ID, err)
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), member)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated crew member %s\n", member.ID)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&edit.name, "name", "", "full name")
	f.StringVar(&edit.role, "role", "", "job title")
	f.StringVar(&edit.department, "department", "", "Management, Sales, Stock or Logistics")
	f.StringVar(&edit.status, "status", "", "Active, On Leave or Terminated")
	f.StringVar(&edit.email, "email", "", "email address")
	f.IntVar(&edit.score, "score", 0, "performance score (0-100)")
	return cmd
}

func (a *app) newCrewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete crew members",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				for _, id := range args {
					if _, err := store.Crew().Delete(cmd.Context(), id); err != nil {
						return fmt.Errorf("delete crew member %s: %w", id, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted crew member %s\n", id)
				}
				return nil
			})
		},
	}
}
