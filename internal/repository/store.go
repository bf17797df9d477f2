package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/models"
)

// Store keeps the whole planner document in memory and mirrors it to a single
// JSON file, the server-side equivalent of the web client's localStorage
// blob. Mutations run on a copy and are only published after the file write
// succeeds, so a failed save leaves both memory and disk untouched.
type Store struct {
	mu       sync.RWMutex
	path     string
	data     models.PlannerData
	revision int64
	logger   *zap.Logger

	writeObserver func(time.Duration)
}

// NewStore loads the document from path, creating a default one (with the
// supplied semester defaults) when the file does not exist yet.
func NewStore(path string, defaults models.SemesterSettings, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, logger: logger}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", path, err)
		}
		s.data.Normalize()
	case os.IsNotExist(err):
		s.data = models.DefaultPlannerData()
		if defaults.StartDate != "" {
			s.data.Settings.StartDate = defaults.StartDate
		}
		if defaults.StartWeek > 0 {
			s.data.Settings.StartWeek = defaults.StartWeek
		}
		if err := s.persist(s.data); err != nil {
			return nil, err
		}
		logger.Info("created data file", zap.String("path", path))
	default:
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}

	return s, nil
}

// SetWriteObserver installs a hook timing each persisted write.
func (s *Store) SetWriteObserver(fn func(time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeObserver = fn
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() models.PlannerData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneData(s.data)
}

// Revision returns a counter incremented on every successful mutation. Cache
// keys derived from it go stale the moment the data changes.
func (s *Store) Revision() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Update applies fn to a copy of the document and persists the result. The
// in-memory document is replaced only after the write succeeds.
func (s *Store) Update(fn func(d *models.PlannerData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneData(s.data)
	if err := fn(&next); err != nil {
		return err
	}
	next.Normalize()
	if err := s.persist(next); err != nil {
		return err
	}
	s.data = next
	s.revision++
	return nil
}

// Replace swaps in a whole new document (used by import).
func (s *Store) Replace(data models.PlannerData) error {
	return s.Update(func(d *models.PlannerData) error {
		*d = data
		return nil
	})
}

func (s *Store) persist(data models.PlannerData) error {
	start := time.Now()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prepare data directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("publish data file: %w", err)
	}

	if s.writeObserver != nil {
		s.writeObserver(time.Since(start))
	}
	return nil
}

// cloneData deep-copies the document. A JSON round-trip is plenty fast at
// tens of entries and cannot drift from the persisted representation.
func cloneData(d models.PlannerData) models.PlannerData {
	raw, err := json.Marshal(d)
	if err != nil {
		return models.DefaultPlannerData()
	}
	var out models.PlannerData
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.DefaultPlannerData()
	}
	out.Normalize()
	return out
}
