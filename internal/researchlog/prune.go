package researchlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Prune rewrites the research log keeping only events recorded within the
// retention window, and returns the number of removed lines. Lines are kept
// verbatim so fields this build does not know about survive the rewrite.
// Lines without a parseable timestamp are removed.
func Prune(path string, retentionDays int) (int, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil // Nothing to prune
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open research log: %w", err)
	}
	defer func() { _ = f.Close() }()

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	var kept [][]byte
	removed := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		var stamp struct {
			Timestamp time.Time `json:"timestamp"`
		}
		if err := json.Unmarshal(line, &stamp); err != nil || stamp.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read research log: %w", err)
	}
	if removed == 0 {
		return 0, nil
	}

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("failed to create pruned research log: %w", err)
	}
	for _, line := range kept {
		if _, err := out.Write(append(line, '\n')); err != nil {
			_ = out.Close()
			_ = os.Remove(tmp)
			return 0, fmt.Errorf("failed to write pruned research log: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to finalize pruned research log: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to replace research log: %w", err)
	}
	return removed, nil
}
