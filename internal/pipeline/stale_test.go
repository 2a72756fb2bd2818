// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mtime time.Time) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
	return path
}

func TestNeedsRebuild(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	source := touch(t, filepath.Join(dir, "source.json"), base)

	tests := []struct {
		name       string
		targetTime time.Time
		expected   bool
	}{
		{"target newer than source", base.Add(time.Minute), false},
		{"target older than source", base.Add(-time.Minute), true},
		{"equal timestamps assume unchanged", base, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := touch(t, filepath.Join(dir, "target.ambin"), tt.targetTime)
			if got := NeedsRebuild(source, target); got != tt.expected {
				t.Errorf("NeedsRebuild() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNeedsRebuild_MissingTarget(t *testing.T) {
	dir := t.TempDir()
	source := touch(t, filepath.Join(dir, "source.json"), time.Now())

	if !NeedsRebuild(source, filepath.Join(dir, "missing.ambin")) {
		t.Error("NeedsRebuild() = false for a missing target, want true")
	}
}

func TestNeedsRebuild_MissingSource(t *testing.T) {
	dir := t.TempDir()
	target := touch(t, filepath.Join(dir, "target.ambin"), time.Now())

	// An unresolved schema stays a bare name that never exists on disk; it
	// must not force rebuilds of otherwise current targets.
	if NeedsRebuild("sound_definition.bfbs", target) {
		t.Error("NeedsRebuild() = true for a missing source, want false")
	}
}
