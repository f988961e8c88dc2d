package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Snapshot files let separate CLI invocations diff against each other.
// The MCP server keeps its baselines in memory and never touches these.

const snapshotDir = "/tmp"

const snapshotPrefix = "ui-bridge-snapshot-"

func snapshotPath(surface string, ts int64) string {
	safe := strings.ReplaceAll(surface, "/", "_")
	return filepath.Join(snapshotDir, fmt.Sprintf("%s%s-%d.json", snapshotPrefix, safe, ts))
}

// SaveSnapshot writes an element list to a snapshot file for later diffing.
func SaveSnapshot(surface string, ts int64, elements []Element) error {
	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(snapshotPath(surface, ts), data, 0644)
}

// LoadLatestSnapshot reads the most recent saved snapshot for a surface.
// Returns nil elements (no error) when no snapshot exists yet.
func LoadLatestSnapshot(surface string) ([]Element, error) {
	safe := strings.ReplaceAll(surface, "/", "_")
	prefix := snapshotPrefix + safe + "-"

	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	// Timestamped filenames sort chronologically for same-width timestamps.
	sort.Strings(names)
	data, err := os.ReadFile(filepath.Join(snapshotDir, names[len(names)-1]))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return elements, nil
}

// CleanSnapshots removes snapshot files for a surface older than maxAge.
func CleanSnapshots(surface string, maxAge time.Duration) {
	safe := strings.ReplaceAll(surface, "/", "_")
	prefix := snapshotPrefix + safe + "-"

	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(snapshotDir, entry.Name()))
		}
	}
}
