//go:build basic

// Package integration contains integration tests for tonelab.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTonelab executes the shared tonelab binary and returns its combined output.
func runTonelab(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tonelabPath := getTonelabBinary()
	cmd := exec.Command(tonelabPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// TestSQLiteEndToEnd drives the full flow against throwaway SQLite files:
// record a color profile and emotion entries, aggregate the week twice to
// exercise the memo cache, then inspect, migrate and export the store.
func TestSQLiteEndToEnd(t *testing.T) {
	workDir := t.TempDir()
	isolation := []string{
		"--cache-backend", "sqlite",
		"--cache-db-connect", filepath.Join(workDir, "cache.db"),
		"--store-backend", "sqlite",
		"--store-db-connect", filepath.Join(workDir, "store.db"),
	}
	run := func(args ...string) (string, error) {
		return runTonelab(t, append(args, isolation...)...)
	}

	// Classify directly from measured Lab values
	output, err := run("color", "--lab", "182,150", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Personal Color: Spring Light")
	assert.Contains(t, output, "Analysis completed in")

	// Record a few emotion entries
	for _, text := range []string{
		"발표 준비 때문에 너무 불안하고 걱정된다",
		"오늘은 정말 행복하고 만족스러운 하루였다",
	} {
		output, err = run("emotion", text, "--user", "itest")
		require.NoError(t, err)
		assert.Contains(t, output, "Emotion Analysis: itest")
	}

	// First weekly run computes the aggregate
	output, err = run("weekly", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Weekly Insight: itest")
	assert.NotContains(t, output, "Served from memo cache")

	// Second weekly run is served from the memo cache
	output, err = run("weekly", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Served from memo cache")

	// Palette resolution works without touching the store
	output, err = run("palette", "summer", "cool", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, "라벤더")
	assert.Contains(t, output, "#E6E6FA")

	// Healing color and recommendations build on the stored profile
	output, err = run("healing", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Healing Color of the Day")

	output, err = run("recommend", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Recommendations for")

	// History lists the recorded entries
	output, err = run("history", "--user", "itest")
	require.NoError(t, err)
	assert.Contains(t, output, "Showing last 2 entries")

	// Feedback lands in the store
	output, err = run("feedback", "--user", "itest", "--rating", "5",
		"--target-type", "color_result", "--target-id", "spring_light")
	require.NoError(t, err)
	assert.Contains(t, output, "Feedback recorded for itest")

	// Store status reports both layers
	output, err = run("store", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Cache Backend: sqlite")
	assert.Contains(t, output, "Store Backend: sqlite")

	// Migrations are idempotent against the auto-created schema
	output, err = run("store", "migrate")
	require.NoError(t, err)
	assert.Contains(t, output, "migrat")

	// Export the observation data to Parquet
	output, err = run("store", "export", "--output-file", filepath.Join(workDir, "export"))
	require.NoError(t, err)
	assert.Contains(t, output, "Export complete!")
	assert.FileExists(t, filepath.Join(workDir, "export.emotion_entries.parquet"))
}

// TestDisabledStoreStillAnalyzes verifies the pipelines run with both
// backends turned off.
func TestDisabledStoreStillAnalyzes(t *testing.T) {
	output, err := runTonelab(t,
		"emotion", "오늘은 평범한 하루였다", "--user", "itest",
		"--cache-backend", "none", "--store-backend", "none")
	require.NoError(t, err)
	assert.Contains(t, output, "Emotion Analysis: itest")
}

// TestVersionOutput checks the version banner.
func TestVersionOutput(t *testing.T) {
	output, err := runTonelab(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "tonelab CLI")
}
