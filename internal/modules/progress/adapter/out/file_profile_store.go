package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gojuon/internal/modules/progress/domain"
	progressout "gojuon/internal/modules/progress/port/out"
)

// FileProfileStore keeps the whole learner bundle in one JSON document.
// A missing or unreadable document yields a fresh profile rather than an
// error, so a corrupt file never locks the user out.
type FileProfileStore struct {
	path string
}

func NewFileProfileStore(path string) progressout.ProfileStore {
	return &FileProfileStore{path: path}
}

func (s *FileProfileStore) Load(_ context.Context) (domain.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, fmt.Errorf("read profile: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *FileProfileStore) Save(_ context.Context, snap domain.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
