// Package stats records session analysis statistics: how many numbers were
// analyzed, how many prime pairs were found, and which even number has the
// richest decomposition so far. Counters persist across runs in the
// application's config directory so `goldbach stats` and the TUI footer can
// report cumulative figures.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Tracker manages stat recording and persistence.
type Tracker struct {
	mu       sync.Mutex
	data     Data
	filePath string
	dirty    bool
}

// NewTracker creates a tracker persisting to stats.json inside dir,
// preloading any previously saved counters. A corrupt or missing file
// starts a fresh data set rather than failing.
func NewTracker(dir string) (*Tracker, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create stats dir: %w", err)
	}

	t := &Tracker{
		filePath: filepath.Join(dir, "stats.json"),
		data: Data{
			Version: "1.0",
			Aggregate: AggregatedStats{
				ByOperation: make(map[string]Counts),
			},
		},
	}

	_ = t.Load() // missing or corrupt data is not fatal; start fresh

	return t, nil
}

// Load reads persisted counters from disk.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &t.data); err != nil {
		return err
	}
	if t.data.Aggregate.ByOperation == nil {
		t.data.Aggregate.ByOperation = make(map[string]Counts)
	}
	return nil
}

// Save writes the counters to disk.
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked()
}

func (t *Tracker) saveLocked() error {
	data, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.filePath, data, 0644)
}

// Record folds one analysis run into the counters: numbers analyzed, pairs
// found, elapsed compute time, and the richest even number of the run.
// Saving is debounced so bursts of TUI-triggered analyses coalesce into a
// single write.
func (t *Tracker) Record(operation string, numbers, pairs int, elapsed time.Duration, bestNumber, bestCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ms := elapsed.Milliseconds()
	t.data.Aggregate.Total.Add(numbers, pairs, ms)

	entry := t.data.Aggregate.ByOperation[operation]
	entry.Add(numbers, pairs, ms)
	t.data.Aggregate.ByOperation[operation] = entry

	if bestCount > t.data.Aggregate.BestPairCount {
		t.data.Aggregate.BestPairCount = bestCount
		t.data.Aggregate.BestNumber = bestNumber
	}

	if !t.dirty {
		t.dirty = true
		time.AfterFunc(2*time.Second, func() {
			_ = t.Save()
			t.mu.Lock()
			t.dirty = false
			t.mu.Unlock()
		})
	}
}

// Snapshot returns a copy of the aggregated stats.
func (t *Tracker) Snapshot() AggregatedStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	agg := t.data.Aggregate
	ops := make(map[string]Counts, len(agg.ByOperation))
	for op, counts := range agg.ByOperation {
		ops[op] = counts
	}
	agg.ByOperation = ops
	return agg
}
