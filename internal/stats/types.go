package stats

// Data is the root structure stored in persistence.
type Data struct {
	Version   string           `json:"version"`
	Aggregate AggregatedStats  `json:"aggregate"`
}

// AggregatedStats holds analysis counters, total and broken down by the
// operation that triggered them (check, primes, pairs, range, tui).
type AggregatedStats struct {
	Total       Counts            `json:"total"`
	ByOperation map[string]Counts `json:"by_operation"`

	// Richest even number observed so far and its pair count.
	BestNumber    int `json:"best_number,omitempty"`
	BestPairCount int `json:"best_pair_count,omitempty"`
}

// Counts holds per-operation sums.
type Counts struct {
	Runs      int   `json:"runs"`
	Numbers   int64 `json:"numbers_analyzed"`
	Pairs     int64 `json:"pairs_found"`
	ComputeMS int64 `json:"compute_ms"`
}

// Add folds one analysis run into the counters.
func (c *Counts) Add(numbers, pairs int, elapsedMS int64) {
	c.Runs++
	c.Numbers += int64(numbers)
	c.Pairs += int64(pairs)
	c.ComputeMS += elapsedMS
}
