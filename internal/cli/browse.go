package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nexus/internal/pages"
	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

var browseHelp = `Commands:
  search [text]          set the search text (no text clears it)
  filter <key> <value>   set a filter; "all" clears it
  per-page <n>           rows per page (` + pageSizeList() + `)
  page <n> | next | prev move between pages
  select <id>            toggle one record
  select-page            toggle every row on the page
  clear                  clear the selection
  run                    apply the bulk action to the selection
  reset                  restore the default view
  refresh                fetch the records again
  show                   redraw the table
  help                   show this help
  quit                   leave
`

func (a *app) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "browse <page>",
		Short:     "Browse a table interactively",
		Long:      "Browse a table interactively, one command per line.\n\n" + browseHelp,
		Args:      cobra.ExactArgs(1),
		ValidArgs: pages.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store types.Store) error {
				out := cmd.OutOrStdout()
				s, err := openSession(cmd.Context(), args[0], store, out, a.settings.pageSize)
				if err != nil {
					return err
				}
				b := &browser{s: s, in: bufio.NewScanner(cmd.InOrStdin()), out: out, logger: a.logger}
				return b.run(cmd.Context())
			})
		},
	}
}

// browser is the interactive loop over one mounted session.
type browser struct {
	s      session
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// errQuit ends the loop.
var errQuit = errors.New("quit")

func (b *browser) run(ctx context.Context) error {
	b.s.mount()
	defer b.s.unmount()

	if err := b.s.view().render(b.out); err != nil {
		return err
	}
	if err := b.s.load(ctx); err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	if err := b.show(); err != nil {
		return err
	}

	for {
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			fmt.Fprintln(b.out)
			return b.in.Err()
		}
		line := strings.TrimSpace(b.in.Text())
		if line == "" {
			continue
		}
		err := b.exec(ctx, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil && exitCode(err) == exitSysError:
			return err
		case err != nil:
			fmt.Fprintln(b.out, "Error:", err)
		}
	}
}

func (b *browser) show() error {
	fmt.Fprintln(b.out)
	return b.s.view().render(b.out)
}

// exec runs one command line. User mistakes are returned as usage errors
// and reported without ending the session.
func (b *browser) exec(ctx context.Context, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	e := b.s.engine()

	switch verb {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprint(b.out, browseHelp)
		return nil
	case "show":
	case "search":
		e.SetSearch(rest)
	case "filter":
		key, value, ok := strings.Cut(rest, " ")
		if !ok || strings.TrimSpace(value) == "" {
			return userErrorf("usage: filter <key> <value>")
		}
		e.SetFilter(key, strings.TrimSpace(value))
	case "per-page":
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return userErrorf("usage: per-page <n> with n > 0")
		}
		e.SetItemsPerPage(n)
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return userErrorf("usage: page <n>")
		}
		if err := goToPage(b.s, n); err != nil {
			return err
		}
	case "next":
		if !e.Next(b.s.view().pagination()) {
			return userErrorf("already on the last page")
		}
	case "prev":
		if !e.Prev(b.s.view().pagination()) {
			return userErrorf("already on the first page")
		}
	case "select":
		if rest == "" {
			return userErrorf("usage: select <id>")
		}
		e.ToggleSelection(rest)
	case "select-page":
		e.ToggleAll(b.s.view().ids())
	case "clear":
		e.ClearSelection()
	case "run":
		if err := b.runAction(ctx); err != nil {
			return err
		}
	case "reset":
		b.s.reset()
	case "refresh":
		if err := b.s.load(ctx); err != nil {
			return fmt.Errorf("fetch records: %w", err)
		}
	default:
		return userErrorf("unknown command %q (type help)", verb)
	}
	return b.show()
}

// runAction asks for confirmation, invokes the bulk action and reloads the
// records, since the action may have changed them.
func (b *browser) runAction(ctx context.Context) error {
	e := b.s.engine()
	action := e.Action()
	if !action.Available() {
		return &usageError{err: grid.ErrNoAction}
	}
	n := e.State().SelectedCount()
	if n == 0 {
		return &usageError{err: grid.ErrEmptySelection}
	}

	fmt.Fprintf(b.out, "%s: apply to %d records? [y/N] ", action.Label(), n)
	if !b.in.Scan() {
		return errQuit
	}
	if answer := strings.ToLower(strings.TrimSpace(b.in.Text())); answer != "y" && answer != "yes" {
		fmt.Fprintln(b.out, "Cancelled.")
		return nil
	}

	ids, err := e.RunAction()
	b.logger.Debug("bulk action", "action", action.Label(), "ids", ids, "err", err)
	if lerr := b.s.load(ctx); lerr != nil {
		return errors.Join(err, fmt.Errorf("fetch records: %w", lerr))
	}
	if err != nil {
		return &usageError{err: err}
	}
	return nil
}
