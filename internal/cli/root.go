// Package cli implements the nexus command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/nexus/internal/paths"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags    rootFlags
	cfg      *viper.Viper
	settings settings
	logger   *slog.Logger
}

// NewRootCmd creates the top-level "nexus" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nexus",
		Short: "Inventory, sales and crew tables from the terminal",
		Long: "Nexus browses the stock, sales and crew tables of a small retail business.\n" +
			"Every table supports search, filters, pagination, selection and a bulk action.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: per-user data dir)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newStatsCmd())
	root.AddCommand(a.newStockCmd())
	root.AddCommand(a.newSalesCmd())
	root.AddCommand(a.newCrewCmd())
	root.AddCommand(a.newInsightsCmd())
	root.AddCommand(a.newBrowseCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.flags.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.cfg = v

	s, err := readSettings(v)
	if err != nil {
		return err
	}
	s.configDir = configDir
	s.dataDir, err = paths.ResolveDataDir(a.flags.dataDir, s.dataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	a.settings = s
	logger.Debug("configuration loaded", "config_dir", configDir, "data_dir", s.dataDir, "backend", s.backend)
	return nil
}

// usageError marks errors caused by the user's input; they exit with
// exitUserError instead of exitSysError.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func userErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &ue),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrUnknownResource),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrBackendEmpty),
		errors.Is(err, types.ErrLatencyInvalid):
		return exitUserError
	default:
		return exitSysError
	}
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
