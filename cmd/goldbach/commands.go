package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goldbach/cmd/goldbach/config"
	"goldbach/cmd/goldbach/ui"
	"goldbach/internal/chart"
	"goldbach/internal/goldbach"
	"goldbach/internal/prime"
	"goldbach/internal/stats"
)

var (
	showChart bool
	workers   int
	showPairs bool
)

// checkCmd tests a single integer for primality
var checkCmd = &cobra.Command{
	Use:   "check [number]",
	Short: "Test whether a number is prime",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// primesCmd lists primes up to a limit
var primesCmd = &cobra.Command{
	Use:   "primes [limit]",
	Short: "List all primes up to a limit",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrimes,
}

// pairsCmd finds the decompositions of one even number
var pairsCmd = &cobra.Command{
	Use:   "pairs [even-number]",
	Short: "Find all prime pairs summing to an even number",
	Long: `Finds every pair of primes (p1, p2) with p1 <= p2 and p1 + p2 equal to
the given even number.

Example:
  goldbach pairs 100
  goldbach pairs 100 --chart`,
	Args: cobra.ExactArgs(1),
	RunE: runPairs,
}

// rangeCmd analyzes every even number in a range
var rangeCmd = &cobra.Command{
	Use:   "range [start] [end]",
	Short: "Analyze every even number in a range",
	Long: `Computes the prime pair decompositions for every even number between
start and end inclusive. Odd starts move up to the next even number, and
nothing below 4 is analyzed.

Example:
  goldbach range 4 100
  goldbach range 4 1000 --chart --workers 8`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

// statsCmd shows cumulative session statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative analysis statistics",
	RunE:  runStats,
}

// parseInt validates numeric input at the presentation boundary; the core
// packages only ever see well-typed integers.
func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, raw)
	}
	return n, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	n, err := parseInt("number", args[0])
	if err != nil {
		return err
	}

	logger.Debug("primality check", zap.Int("n", n))

	if prime.IsPrime(n) {
		fmt.Printf("%d is prime\n", n)
	} else {
		fmt.Printf("%d is not prime\n", n)
	}
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	limit, err := parseInt("limit", args[0])
	if err != nil {
		return err
	}
	cfg, _ := config.Load()
	if limit > cfg.MaxNumber {
		return fmt.Errorf("limit %d is above the configured ceiling of %d (see %s)",
			limit, cfg.MaxNumber, configHint())
	}

	primes := prime.Primes(limit)
	logger.Debug("primes generated", zap.Int("limit", limit), zap.Int("count", len(primes)))

	if len(primes) == 0 {
		fmt.Printf("No primes up to %d\n", limit)
		return nil
	}

	fmt.Printf("%d primes up to %d:\n", len(primes), limit)
	for i, p := range primes {
		if i > 0 {
			if i%10 == 0 {
				fmt.Println()
			} else {
				fmt.Print(" ")
			}
		}
		fmt.Printf("%6d", p)
	}
	fmt.Println()
	return nil
}

func runPairs(cmd *cobra.Command, args []string) error {
	n, err := parseInt("number", args[0])
	if err != nil {
		return err
	}
	if n <= 2 || n%2 != 0 {
		return fmt.Errorf("%d is not an even number greater than 2", n)
	}
	cfg, _ := config.Load()
	if n > cfg.MaxNumber {
		return fmt.Errorf("%d is above the configured ceiling of %d (see %s)",
			n, cfg.MaxNumber, configHint())
	}

	began := time.Now()
	pairs := goldbach.Pairs(n)
	elapsed := time.Since(began)

	logger.Debug("pairs computed",
		zap.Int("n", n),
		zap.Int("pairs", len(pairs)),
		zap.Duration("elapsed", elapsed))

	if tracker := openTracker(); tracker != nil {
		tracker.Record("pairs", 1, len(pairs), elapsed, n, len(pairs))
		_ = tracker.Save()
	}

	styles := ui.DefaultStyles()
	fmt.Printf("%d = sum of two primes in %d way(s)\n\n", n, len(pairs))

	table := ui.NewTable("", "p1", "p2")
	for _, p := range pairs {
		table.AddRow(strconv.Itoa(p.P1), strconv.Itoa(p.P2))
	}
	if out := table.View(styles); out != "" {
		fmt.Println(out)
	}

	if showChart && len(pairs) > 0 {
		fmt.Println()
		fmt.Println(chart.Scatter(
			map[int][]goldbach.Pair{n: pairs},
			chart.ScatterOptions{
				Width:       cfg.ChartWidth,
				Height:      cfg.ChartHeight,
				LegendLimit: cfg.LegendLimit,
			},
		))
	}
	return nil
}

func runRange(cmd *cobra.Command, args []string) error {
	start, err := parseInt("start", args[0])
	if err != nil {
		return err
	}
	end, err := parseInt("end", args[1])
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("end %d is below start %d", end, start)
	}
	cfg, _ := config.Load()
	if end > cfg.MaxNumber {
		return fmt.Errorf("end %d is above the configured ceiling of %d (see %s)",
			end, cfg.MaxNumber, configHint())
	}

	w := workers
	if w <= 0 {
		w = cfg.Workers
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	began := time.Now()
	analysis, err := goldbach.AnalyzeRangeContext(ctx, start, end, w)
	if err != nil {
		return fmt.Errorf("range analysis failed: %w", err)
	}
	elapsed := time.Since(began)

	nums := analysis.Numbers()
	logger.Debug("range analyzed",
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Int("numbers", len(nums)),
		zap.Int("workers", w),
		zap.Duration("elapsed", elapsed))

	if len(nums) == 0 {
		fmt.Printf("No even numbers to analyze in [%d, %d]\n", start, end)
		return nil
	}

	if tracker := openTracker(); tracker != nil {
		best, bestCount, total := 0, 0, 0
		for num, count := range analysis.Counts {
			total += count
			if count > bestCount {
				best, bestCount = num, count
			}
		}
		tracker.Record("range", len(nums), total, elapsed, best, bestCount)
		_ = tracker.Save()
	}

	styles := ui.DefaultStyles()
	fmt.Printf("Analyzed %d even number(s) from %d to %d in %s\n\n",
		len(nums), nums[0], nums[len(nums)-1], elapsed.Round(time.Millisecond))

	headers := []string{"even", "pairs"}
	if showPairs {
		headers = append(headers, "decompositions")
	}
	table := ui.NewTable("", headers...)
	for _, num := range nums {
		row := []string{strconv.Itoa(num), strconv.Itoa(analysis.Counts[num])}
		if showPairs {
			row = append(row, formatPairList(analysis.Pairs[num]))
		}
		table.AddRow(row...)
	}
	fmt.Println(table.View(styles))

	if showChart {
		fmt.Println()
		fmt.Println(chart.Bar(analysis.Counts, chart.BarOptions{}))
		fmt.Println()
		fmt.Println(chart.Scatter(analysis.Pairs, chart.ScatterOptions{
			Width:       cfg.ChartWidth,
			Height:      cfg.ChartHeight,
			LegendLimit: cfg.LegendLimit,
		}))
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	tracker := openTracker()
	if tracker == nil {
		return fmt.Errorf("could not open session statistics")
	}

	snap := tracker.Snapshot()
	if snap.Total.Runs == 0 {
		fmt.Println("No analyses recorded yet.")
		return nil
	}

	fmt.Println("Cumulative analysis statistics")
	fmt.Println("==============================")
	fmt.Printf("Runs:              %d\n", snap.Total.Runs)
	fmt.Printf("Numbers analyzed:  %d\n", snap.Total.Numbers)
	fmt.Printf("Pairs found:       %d\n", snap.Total.Pairs)
	fmt.Printf("Compute time:      %s\n", (time.Duration(snap.Total.ComputeMS) * time.Millisecond).Round(time.Millisecond))
	if snap.BestNumber > 0 {
		fmt.Printf("Richest number:    %d (%d pairs)\n", snap.BestNumber, snap.BestPairCount)
	}

	if len(snap.ByOperation) > 0 {
		fmt.Println("\nBy operation:")
		table := ui.NewTable("", "operation", "runs", "numbers", "pairs")
		for _, op := range sortedOps(snap.ByOperation) {
			counts := snap.ByOperation[op]
			table.AddRow(op,
				strconv.Itoa(counts.Runs),
				strconv.FormatInt(counts.Numbers, 10),
				strconv.FormatInt(counts.Pairs, 10))
		}
		fmt.Println(table.View(ui.DefaultStyles()))
	}
	return nil
}

func formatPairList(pairs []goldbach.Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%d,%d)", p.P1, p.P2)
	}
	return strings.Join(parts, " ")
}

func sortedOps(byOp map[string]stats.Counts) []string {
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func configHint() string {
	path, err := config.File()
	if err != nil {
		return "config.json"
	}
	return path
}
