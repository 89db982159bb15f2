// This file seeds a fresh data directory with the sample dataset.
package sqlite

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/nexus/internal/fixtures"
)

// seedJSONL writes the fixture for every resource whose JSONL file does not
// exist yet. Existing files, including empty ones, are left alone, so records
// deleted by the user are never resurrected.
func seedJSONL(dataDir string) error {
	seeds := []struct {
		file   string
		encode func() ([]json.RawMessage, error)
	}{
		{stockJSONL, func() ([]json.RawMessage, error) { return marshalJSONL(fixtures.Stock()) }},
		{salesJSONL, func() ([]json.RawMessage, error) { return marshalJSONL(fixtures.Sales()) }},
		{crewJSONL, func() ([]json.RawMessage, error) { return marshalJSONL(fixtures.Crew()) }},
	}

	for _, s := range seeds {
		path := filepath.Join(dataDir, s.file)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", s.file, err)
		}
		records, err := s.encode()
		if err != nil {
			return err
		}
		if err := writeJSONL(path, records); err != nil {
			return fmt.Errorf("seeding %s: %w", s.file, err)
		}
	}
	return nil
}
