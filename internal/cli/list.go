package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nexus/internal/pages"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// listOptions are the view-state flags of a list command.
type listOptions struct {
	search     string
	filters    []string
	page       int
	perPage    int
	selectIDs  []string
	selectPage bool
}

func (a *app) newStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inventory table",
	}
	cmd.AddCommand(a.newListCmd(pages.Stock, "status"))
	return cmd
}

func (a *app) newSalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Orders table",
	}
	cmd.AddCommand(a.newListCmd(pages.Sales, "status"))
	return cmd
}

func (a *app) newListCmd(page, filterKeys string) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the %s table", page),
		Long: fmt.Sprintf(`List one page of the %s table.

Search matches a substring of the searchable fields, ignoring case. Filters
take key=value pairs (filter keys: %s); "all" clears a filter.

Example:
  nexus %s list --search pro --per-page 10
  nexus %s list --filter status=all --page 2 --select-page --json`, page, filterKeys, page, page),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, page, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.search, "search", "", "search text")
	f.StringArrayVar(&opts.filters, "filter", nil, "filter as key=value (repeatable)")
	f.IntVar(&opts.page, "page", 1, "page number")
	f.IntVar(&opts.perPage, "per-page", 0, "rows per page, usually "+pageSizeList()+" (default: page_size from config)")
	f.StringArrayVar(&opts.selectIDs, "select", nil, "toggle selection of a record id (repeatable)")
	f.BoolVar(&opts.selectPage, "select-page", false, "toggle selection of every row on the page")
	return cmd
}

// runList mounts the page's engine, applies the flags in the order a user
// would (search, filters, page size, page, selection) and prints the frame.
func (a *app) runList(cmd *cobra.Command, page string, opts listOptions) error {
	return a.withStore(func(store types.Store) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, page, store, cmd.ErrOrStderr(), a.settings.pageSize)
		if err != nil {
			return err
		}
		s.mount()
		defer s.unmount()

		e := s.engine()
		if opts.search != "" {
			e.SetSearch(opts.search)
		}
		for _, arg := range opts.filters {
			key, value, err := parseFilter(arg)
			if err != nil {
				return err
			}
			e.SetFilter(key, value)
		}
		if cmd.Flags().Changed("per-page") {
			if opts.perPage <= 0 {
				return userErrorf("--per-page must be positive, got %d", opts.perPage)
			}
			e.SetItemsPerPage(opts.perPage)
		}

		if err := s.load(ctx); err != nil {
			return fmt.Errorf("fetch %s: %w", page, err)
		}
		if cmd.Flags().Changed("page") {
			if err := goToPage(s, opts.page); err != nil {
				return err
			}
		}

		for _, id := range opts.selectIDs {
			e.ToggleSelection(id)
		}
		if opts.selectPage {
			e.ToggleAll(s.view().ids())
		}

		v := s.view()
		if a.flags.jsonMode {
			return writeJSON(cmd.OutOrStdout(), v.json())
		}
		return v.render(cmd.OutOrStdout())
	})
}
