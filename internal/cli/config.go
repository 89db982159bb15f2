package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/nexus/internal/insights"
	"github.com/mesh-intelligence/nexus/internal/paths"
	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "NEXUS"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyLatency  = "latency"
	cfgKeyPageSize = "page_size"
	cfgKeyAPIKey   = "insights.api_key"
	cfgKeyModel    = "insights.model"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# nexus configuration

# Storage backend: sqlite or memory
backend: sqlite

# Data directory for the sqlite backend (optional; overridable by --data-dir)
# data_dir:

# Simulated round-trip of the memory backend
latency: 600ms

# Rows per page: 5, 10, 20 or 50
page_size: 5

insights:
  # Gemini API key; NEXUS_INSIGHTS_API_KEY also works
  api_key: ""
  model: gemini-3-flash-preview
`

// settings is the typed view of the loaded configuration.
type settings struct {
	configDir string
	backend   string
	dataDir   string
	latency   time.Duration
	pageSize  int
	apiKey    string
	model     string
}

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run. Environment variables prefixed
// NEXUS_ override file values; nested keys use underscores
// (NEXUS_INSIGHTS_API_KEY).
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyLatency, types.DefaultLatency)
	v.SetDefault(cfgKeyPageSize, grid.DefaultItemsPerPage)
	v.SetDefault(cfgKeyModel, insights.DefaultModel)
	v.SetDefault(cfgKeyAPIKey, "")
	v.SetDefault(cfgKeyDataDir, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile writes defaultConfigYAML unless a config file
// already exists.
func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// readSettings extracts and validates the typed settings.
func readSettings(v *viper.Viper) (settings, error) {
	s := settings{
		backend:  v.GetString(cfgKeyBackend),
		dataDir:  v.GetString(cfgKeyDataDir),
		latency:  v.GetDuration(cfgKeyLatency),
		pageSize: v.GetInt(cfgKeyPageSize),
		apiKey:   v.GetString(cfgKeyAPIKey),
		model:    v.GetString(cfgKeyModel),
	}
	if err := s.storeConfig().Validate(); err != nil {
		return s, fmt.Errorf("invalid config: %w", err)
	}
	if s.pageSize <= 0 {
		return s, userErrorf("invalid config: page_size must be positive, got %d", s.pageSize)
	}
	return s, nil
}

// storeConfig converts the settings into a store configuration.
func (s settings) storeConfig() types.Config {
	return types.Config{Backend: s.backend, DataDir: s.dataDir, Latency: s.latency}
}
