package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// StateRepo implements repository.StateRepository on a single JSON file
type StateRepo struct {
	path   string
	logger *zap.Logger
}

// NewStateRepo creates a state repository backed by the file at path
func NewStateRepo(path string, logger *zap.Logger) *StateRepo {
	return &StateRepo{path: path, logger: logger}
}

// Load reads the persisted record. A missing file is a normal first-run
// condition; a corrupt file is logged and discarded. Both yield an
// empty record.
func (r *StateRepo) Load() domain.PersistedRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("No state file, starting fresh", zap.String("path", r.path))
		} else {
			r.logger.Warn("Failed to read state file",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return domain.EmptyRecord()
	}

	var record domain.PersistedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		r.logger.Warn("State file is corrupt, starting fresh",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return domain.EmptyRecord()
	}

	// Normalize nil fields from hand-edited or truncated records
	if record.UsedWords == nil {
		record.UsedWords = []string{}
	}
	if record.WordGroups == nil {
		record.WordGroups = map[string][]string{}
	}

	return record
}

// Save writes the record atomically: marshal to a temp file in the
// target directory, then rename over the previous state. A crash
// mid-write leaves the old record intact.
func (r *StateRepo) Save(record domain.PersistedRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}
