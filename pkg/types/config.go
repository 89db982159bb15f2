package types

import (
	"errors"
	"time"
)

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string        `json:"backend" yaml:"backend"`
	DataDir string        `json:"data_dir" yaml:"data_dir"`
	Latency time.Duration `json:"latency" yaml:"latency"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// DefaultLatency is the simulated round-trip applied by the memory backend.
const DefaultLatency = 600 * time.Millisecond

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrLatencyInvalid = errors.New("latency must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Latency < 0 {
		return ErrLatencyInvalid
	}
	return nil
}
