package grocery

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CounterStore persists the run counter as a single integer in a plain
// text file.
type CounterStore struct {
	path string
}

// NewCounterStore creates a store for the given counter file path.
func NewCounterStore(path string) *CounterStore {
	return &CounterStore{path: path}
}

// Load reads the current counter. A missing file means the counter has
// never been written and reads as 0; any other failure propagates.
func (s *CounterStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read run counter %s: %w", s.path, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("run counter %s is not an integer: %w", s.path, err)
	}
	return n, nil
}

// Save writes the counter atomically: the value lands in a temp file first
// and is renamed over the real one, so a crash mid-write cannot leave a
// corrupt counter.
func (s *CounterStore) Save(n int) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(n)), 0644); err != nil {
		return fmt.Errorf("failed to write run counter temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace run counter %s: %w", s.path, err)
	}
	return nil
}
