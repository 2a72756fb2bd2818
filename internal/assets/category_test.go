// SPDX-License-Identifier: MPL-2.0

package assets

import "testing"

func TestCategories_Order(t *testing.T) {
	expected := []string{
		"config", "buses", "soundbanks", "collections", "sounds", "events",
		"pipelines", "attenuators", "switches", "switch_containers", "rtpc",
		"effects", "environments",
	}

	cats := Categories()
	if len(cats) != len(expected) {
		t.Fatalf("Categories() returned %d entries, want %d", len(cats), len(expected))
	}

	for i, name := range expected {
		if cats[i].Name != name {
			t.Errorf("Categories()[%d].Name = %q, want %q", i, cats[i].Name, name)
		}
	}
}

func TestCategories_SuffixCategoriesScanProjectRoot(t *testing.T) {
	for _, c := range Categories()[:2] {
		if c.Dir != "" {
			t.Errorf("category %q: Dir = %q, want project root", c.Name, c.Dir)
		}
		if c.Recursive {
			t.Errorf("category %q must not be recursive", c.Name)
		}
	}
}

func TestCategories_DirCategoriesAreRecursive(t *testing.T) {
	for _, c := range Categories()[2:] {
		if c.Dir == "" {
			t.Errorf("category %q: missing source subdirectory", c.Name)
		}
		if !c.Recursive {
			t.Errorf("category %q must be recursive", c.Name)
		}
		if c.Pattern != "**/*.json" {
			t.Errorf("category %q: Pattern = %q, want **/*.json", c.Name, c.Pattern)
		}
	}
}

func TestCategories_SchemasAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, c := range Categories() {
		if c.Schema == "" {
			t.Errorf("category %q has no schema", c.Name)
			continue
		}
		if prev, ok := seen[c.Schema]; ok {
			t.Errorf("schema %q shared by %q and %q", c.Schema, prev, c.Name)
		}
		seen[c.Schema] = c.Name
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "mutated"
	if Categories()[0].Name != "config" {
		t.Error("Categories() exposes the internal registry to mutation")
	}
}
