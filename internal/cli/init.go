package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nexus/internal/paths"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend  string         `yaml:"backend"`
	DataDir  string         `yaml:"data_dir,omitempty"`
	Latency  string         `yaml:"latency"`
	PageSize int            `yaml:"page_size"`
	Insights insightsConfig `yaml:"insights"`
}

type insightsConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

func (a *app) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and storage",
		Long: "Write config.yaml with the resolved settings and initialize the data\n" +
			"directory, seeding the sample dataset when it is empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.writeConfig(force); err != nil {
				return err
			}
			if err := a.withStore(func(types.Store) error { return nil }); err != nil {
				return fmt.Errorf("initialize storage: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nexus initialized (config: %s, data: %s)\n",
				a.settings.configDir, a.settings.dataDir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}

// writeConfig records the effective settings in config.yaml. The file
// written on first run holds defaults only, so init always rewrites it
// unless it was edited and --force is absent.
func (a *app) writeConfig(force bool) error {
	path := paths.ConfigFile(a.settings.configDir)
	current, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}
	if err == nil && string(current) != defaultConfigYAML && !force {
		return nil
	}

	s := a.settings
	data, err := yaml.Marshal(&configFile{
		Backend:  s.backend,
		DataDir:  s.dataDir,
		Latency:  s.latency.String(),
		PageSize: s.pageSize,
		Insights: insightsConfig{APIKey: s.apiKey, Model: s.model},
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
