// Package main provides a performance benchmarking tool for the tonelab CLI.
// It measures execution times for the emotion scorer, direct color entry and
// the weekly aggregator, running each command multiple times, treating the
// first successful cache-backed run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - tonelab binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the isolated benchmark databases
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	User        string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	TestUsers   []string
	SeedEntries int
	SeedTexts   []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		TestUsers:   []string{"bench-sol", "bench-juno", "bench-min", "bench-hana"},
		SeedEntries: 12,
		SeedTexts: []string{
			"발표 준비 때문에 너무 불안하고 걱정된다",
			"오늘은 정말 행복하고 만족스러운 하루였다",
			"업무가 밀려서 스트레스가 심하다",
			"산책을 하고 나니 마음이 편안해졌다",
			"계속 우울하고 눈물이 난다",
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear any leftover data from earlier runs
	fmt.Printf("Clearing stores...\n")
	clearArgs := append([]string{"store", "clear"}, isolationArgs(config, "sqlite")...)
	clearCmd := exec.Command("tonelab", clearArgs...)
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear stores: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Stores cleared successfully\n")
	}

	if err := seedUsers(config); err != nil {
		fmt.Printf("Failed to seed benchmark users: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the tonelab binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if tonelab is available
	if _, err := exec.LookPath("tonelab"); err != nil {
		return fmt.Errorf("tonelab binary not found in PATH")
	}

	// Ensure the work directory exists
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// isolationArgs keeps benchmark data away from the default databases.
func isolationArgs(config BenchmarkConfig, cacheBackend string) []string {
	return []string{
		"--cache-backend", cacheBackend,
		"--cache-db-connect", filepath.Join(config.WorkDir, "bench_cache.db"),
		"--store-backend", "sqlite",
		"--store-db-connect", filepath.Join(config.WorkDir, "bench_store.db"),
	}
}

// seedUsers populates the observation store so the weekly aggregator has
// real entries to chew on.
func seedUsers(config BenchmarkConfig) error {
	fmt.Printf("Seeding %d users with %d entries each\n", len(config.TestUsers), config.SeedEntries)

	for _, user := range config.TestUsers {
		// Color profile first so recommendations and healing resolve
		args := append([]string{"color", "--lab", "182,150", "--user", user}, isolationArgs(config, "none")...)
		if output, err := exec.Command("tonelab", args...).CombinedOutput(); err != nil {
			return fmt.Errorf("seeding color profile for %s: %v\nOutput: %s", user, err, string(output))
		}

		for i := 0; i < config.SeedEntries; i++ {
			text := config.SeedTexts[i%len(config.SeedTexts)]
			args := append([]string{"emotion", text, "--user", user}, isolationArgs(config, "none")...)
			if output, err := exec.Command("tonelab", args...).CombinedOutput(); err != nil {
				return fmt.Errorf("seeding emotion entry for %s: %v\nOutput: %s", user, err, string(output))
			}
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured users
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d users, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.TestUsers), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, user := range config.TestUsers {
		fmt.Printf("Benchmarking %s\n", user)

		// Emotion scoring
		text := config.SeedTexts[0]
		result := runBenchmarkSuite(config, user, "emotion", "emotion scoring", []string{text})
		results = append(results, result)

		// Direct color entry
		result = runBenchmarkSuite(config, user, "color", "color entry", []string{"--lab", "150,120"})
		results = append(results, result)

		// Weekly aggregation; the only command with a memoized warm path
		result = runBenchmarkSuite(config, user, "weekly", "weekly aggregation", nil)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, user, command, description string, extraArgs []string) BenchmarkResult {
	fmt.Printf("Running %s for %s\n", description, user)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, user, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		User:        user,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a tonelab command multiple times with the specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, user, command string, extraArgs []string, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command}
	args = append(args, extraArgs...)
	args = append(args, "--user", user)
	args = append(args, isolationArgs(config, cacheBackend)...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("tonelab", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "emotion":
		return strings.Contains(outputStr, "Emotion Analysis:")
	case "color":
		return strings.Contains(outputStr, "Analysis completed in")
	case "weekly":
		return strings.Contains(outputStr, "Weekly Insight:")
	default:
		return false
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/tonelab_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"user", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.User, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "emotion", "Emotion Scoring:")
	printCommandSummary(results, "color", "Color Entry:")
	printCommandSummary(results, "weekly", "Weekly Aggregation:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.User, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
