// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"testing"
)

func TestBuildTreeIgnores(t *testing.T) {
	tests := []struct {
		name        string
		projectPath string
		buildPath   string
		want        []string
	}{
		{
			"build dir inside project",
			filepath.Join("/work", "project"),
			filepath.Join("/work", "project", "build"),
			[]string{"build", "build/**"},
		},
		{
			"nested build dir",
			filepath.Join("/work", "project"),
			filepath.Join("/work", "project", "out", "pc"),
			[]string{"out/pc", "out/pc/**"},
		},
		{
			"build dir outside project",
			filepath.Join("/work", "project"),
			filepath.Join("/work", "artifacts"),
			nil,
		},
		{
			"build dir is project root",
			filepath.Join("/work", "project"),
			filepath.Join("/work", "project"),
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTreeIgnores(tt.projectPath, tt.buildPath)
			if len(got) != len(tt.want) {
				t.Fatalf("buildTreeIgnores() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("buildTreeIgnores()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
