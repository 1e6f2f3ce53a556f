package goldbach

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// RangeAnalysis holds the pair decompositions and pair counts for every
// even number in an analyzed range. Both maps are keyed identically by the
// even numbers actually analyzed; renderers sort the keys when displaying.
type RangeAnalysis struct {
	Pairs  map[int][]Pair
	Counts map[int]int
}

// Numbers returns the analyzed even numbers in ascending order.
func (r *RangeAnalysis) Numbers() []int {
	nums := make([]int, 0, len(r.Counts))
	for num := range r.Counts {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}

// effectiveStart normalizes a requested range start: odd starts move up to
// the next even number, and nothing below 4 is ever analyzed since 4 = 2+2
// is the smallest even number with a two-prime decomposition.
func effectiveStart(start int) int {
	if start%2 != 0 {
		start++
	}
	if start < 4 {
		return 4
	}
	return start
}

// AnalyzeRange computes Pairs and Count for every even number from
// max(4, start rounded up to even) through end inclusive. An inverted
// range yields empty maps, not an error.
func AnalyzeRange(start, end int) *RangeAnalysis {
	result := &RangeAnalysis{
		Pairs:  make(map[int][]Pair),
		Counts: make(map[int]int),
	}
	for num := effectiveStart(start); num <= end; num += 2 {
		pairs := Pairs(num)
		result.Pairs[num] = pairs
		result.Counts[num] = len(pairs)
	}
	return result
}

// AnalyzeRangeContext is AnalyzeRange with bounded parallelism across the
// numbers of the range. Each per-number computation is independent; results
// land in per-number slots so the merge into the maps involves no shared
// writes between workers. Output is identical to AnalyzeRange.
//
// ctx cancels between numbers, never mid-number. workers ≤ 1 runs the
// sequential path with only the cancellation check added.
func AnalyzeRangeContext(ctx context.Context, start, end, workers int) (*RangeAnalysis, error) {
	first := effectiveStart(start)

	result := &RangeAnalysis{
		Pairs:  make(map[int][]Pair),
		Counts: make(map[int]int),
	}
	if end < first {
		return result, nil
	}

	count := (end-first)/2 + 1

	if workers <= 1 {
		for num := first; num <= end; num += 2 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pairs := Pairs(num)
			result.Pairs[num] = pairs
			result.Counts[num] = len(pairs)
		}
		return result, nil
	}

	slots := make([][]Pair, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = Pairs(first + 2*i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait cancels gctx on return, so completion is judged by the caller's
	// context, never the derived one.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, pairs := range slots {
		num := first + 2*i
		result.Pairs[num] = pairs
		result.Counts[num] = len(pairs)
	}
	return result, nil
}
