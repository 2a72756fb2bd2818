// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNew_InvalidWatchPattern(t *testing.T) {
	_, err := New(Config{
		Root:     t.TempDir(),
		Patterns: []string{"[unclosed"},
	})
	if err == nil {
		t.Fatal("New() error = nil, want invalid pattern error")
	}
	if !strings.Contains(err.Error(), "[unclosed") {
		t.Errorf("New() error = %v, want pattern named in message", err)
	}
}

func TestNew_InvalidIgnorePattern(t *testing.T) {
	_, err := New(Config{
		Root:   t.TempDir(),
		Ignore: []string{"[unclosed"},
	})
	if err == nil {
		t.Fatal("New() error = nil, want invalid pattern error")
	}
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(Config{Root: filepath.Join(t.TempDir(), "does-not-exist")})
	if err != nil {
		// WalkDir reports the root as inaccessible on stderr and the
		// watcher comes up empty, so construction should not fail.
		t.Fatalf("New() error = %v, want nil for missing root", err)
	}
}

func TestMatchesPatterns(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		rel      string
		want     bool
	}{
		{"no patterns matches everything", nil, "anything/at/all.txt", true},
		{"json glob matches nested", []string{"**/*.json"}, "sounds/ambience/rain.json", true},
		{"json glob matches top-level", []string{"**/*.json"}, "pc.config.json", true},
		{"json glob rejects other extensions", []string{"**/*.json"}, "sounds/rain.wav", false},
		{"first of several patterns", []string{"**/*.json", "**/*.toml"}, "project.toml", true},
		{"windows separators normalized", []string{"**/*.json"}, `sounds\rain.json`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Watcher{cfg: Config{Patterns: tt.patterns}}
			if got := w.matchesPatterns(tt.rel); got != tt.want {
				t.Errorf("matchesPatterns(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestIsIgnored(t *testing.T) {
	w := &Watcher{ignores: append(DefaultIgnores(), "**/generated/**")}

	tests := []struct {
		name string
		rel  string
		want bool
	}{
		{"git metadata", ".git/objects/ab/cdef", true},
		{"build output", "build/pc/init.ambank", true},
		{"vim swap file", "sounds/.rain.json.swp", true},
		{"backup file", "events/play.json~", true},
		{"extra user ignore", "generated/out.json", true},
		{"regular asset", "sounds/ambience/rain.json", false},
		{"directory named buildinfo", "buildinfo/readme.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isIgnored(tt.rel); got != tt.want {
				t.Errorf("isIgnored(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestDefaultIgnores_ReturnsCopy(t *testing.T) {
	first := DefaultIgnores()
	first[0] = "mutated"

	second := DefaultIgnores()
	if second[0] == "mutated" {
		t.Error("DefaultIgnores() shares backing storage between calls")
	}
}

func TestRun_SecondCallFails(t *testing.T) {
	w, err := New(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, want nil on cancellation", err)
	}

	if err := w.Run(context.Background()); err == nil {
		t.Error("second Run() error = nil, want error")
	}
}

func TestRun_DebouncedCallback(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sounds"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var (
		mu       sync.Mutex
		received [][]string
	)
	fired := make(chan struct{}, 4)

	w, err := New(Config{
		Root:     root,
		Patterns: []string{"**/*.json"},
		Debounce: 50 * time.Millisecond,
		Stderr:   &bytes.Buffer{},
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			received = append(received, changed)
			mu.Unlock()
			fired <- struct{}{}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Two writes inside one debounce window should coalesce into one
	// callback carrying both paths.
	if err := os.WriteFile(filepath.Join(root, "sounds", "rain.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "sounds", "wind.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	mu.Lock()
	got := received[0]
	mu.Unlock()

	want := filepath.Join("sounds", "rain.json")
	found := false
	for _, p := range got {
		if p == want {
			found = true
		}
	}
	if !found {
		t.Errorf("callback paths = %v, want to include %q", got, want)
	}

	cancel()
	select {
	case runErr := <-done:
		if runErr != nil {
			t.Errorf("Run() error = %v, want nil", runErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Run to stop")
	}
}

func TestRun_IgnoredFilesDoNotFire(t *testing.T) {
	root := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := New(Config{
		Root:     root,
		Patterns: []string{"**/*.json"},
		Debounce: 30 * time.Millisecond,
		Stderr:   &bytes.Buffer{},
		OnChange: func(context.Context, []string) error {
			fired <- struct{}{}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
		t.Error("callback fired for a non-matching file")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	<-done
}
