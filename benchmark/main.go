// Package main provides a performance benchmarking tool for the weightexile CLI.
// It measures how long catalog-backed commands take with and without the catalog cache,
// running each command several times, treating the first cached run as cold and averaging
// the rest as warm, and writes a CSV summary.
//
// Prerequisites:
// - weightexile binary installed and available in PATH
// - A catalog directory holding stats.json and items.json from the trade API
//
// Usage: go run benchmark/main.go [catalog-dir]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkCase is one CLI invocation to measure.
type BenchmarkCase struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	StatsFile   string
	ItemsFile   string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Cases       []BenchmarkCase
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [catalog-dir]\n", os.Args[0])
		os.Exit(1)
	}
	catalogDir := os.Args[1]

	config := BenchmarkConfig{
		StatsFile:   filepath.Join(catalogDir, "stats.json"),
		ItemsFile:   filepath.Join(catalogDir, "items.json"),
		Timeout:     time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Cases: []BenchmarkCase{
			{Name: "stats", Args: []string{"stats", "--query", "life", "--output", "json"}},
			{Name: "types", Args: []string{"types", "--output", "json"}},
			{Name: "weights", Args: []string{
				"weights", "--output", "json",
				"--stat", "pseudo.pseudo_total_life:5:at-least:90",
				"--stat", "pseudo.pseudo_total_resistance:4:at-least:80",
				"--stat", "pseudo.pseudo_increased_movement_speed:3",
			}},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("weightexile", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the binary and catalogs exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("weightexile"); err != nil {
		return fmt.Errorf("weightexile binary not found in PATH")
	}
	for _, path := range []string{config.StatsFile, config.ItemsFile} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("catalog not found at %s", path)
		}
	}
	return nil
}

// runBenchmarks executes every benchmark case
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	fmt.Printf("Starting benchmark: %d commands, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Cases), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	results := make([]BenchmarkResult, 0, len(config.Cases))
	for _, c := range config.Cases {
		results = append(results, runBenchmarkSuite(config, c))
	}
	return results
}

// runBenchmarkSuite runs both no-cache and cache phases for one case
func runBenchmarkSuite(config BenchmarkConfig, c BenchmarkCase) BenchmarkResult {
	fmt.Printf("Running %s\n", c.Name)

	_, noCacheTimes := runBenchmark(config, c, "none", config.NoCacheRuns)
	noCacheAvg := average(noCacheTimes)

	coldTime, warmTimes := runBenchmark(config, c, "sqlite", config.CacheRuns)
	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := average(warmTimes)

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Command:     c.Name,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a case several times and returns the first time and the rest
func runBenchmark(config BenchmarkConfig, c BenchmarkCase, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, c.Args...)
	args = append(args,
		"--cache-backend", cacheBackend,
		"--stats-file", config.StatsFile,
		"--items-file", config.ItemsFile,
	)

	var times []float64
	for range numRuns {
		start := time.Now()
		cmd := exec.Command("weightexile", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func average(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("weightexile_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, r := range results {
		fmt.Printf("  %-8s: No-cache: %s, Cold: %s, Warm: %s\n", r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime)
	}
}
