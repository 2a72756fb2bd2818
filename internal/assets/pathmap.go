// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FallbackExt is the output extension for sources matching no category rule.
const FallbackExt = ".ambin"

type (
	// extensionRule pairs a path predicate with the output extension applied
	// when the predicate matches. Predicates receive the slash-normalized
	// source path.
	extensionRule struct {
		match func(path string) bool
		ext   string
	}
)

// extensionRules is a strict priority chain: the first matching rule wins,
// even when a later rule is more specific. A file under both a "soundbanks"
// and a "sounds" segment therefore compiles to .ambank, never .amsound.
// Runtime loaders key on these extensions, so both the mapping and its
// precedence are part of the artifact format contract.
//
// The directory rules test substring containment on the whole path, not
// path segments. A project rooted at e.g. ".../sounds_backup/" will match
// the sounds rule for every file; see MapOutputPath.
//
// Note that "effects" has no rule: effect definitions compile to the
// generic .ambin extension.
var extensionRules = []extensionRule{
	{hasSuffix("config.json"), ".amconfig"},
	{hasSuffix("buses.json"), ".ambus"},
	{containsDir(SoundBanksDirName), ".ambank"},
	{containsDir(CollectionsDirName), ".amcollection"},
	{containsDir(SoundsDirName), ".amsound"},
	{containsDir(EventsDirName), ".amevent"},
	{containsDir(PipelinesDirName), ".ampipeline"},
	{containsDir(AttenuatorsDirName), ".amattenuation"},
	{containsDir(SwitchesDirName), ".amswitch"},
	{containsDir(SwitchContainersDirName), ".amswitchcontainer"},
	{containsDir(RtpcDirName), ".amrtpc"},
	{containsDir(EnvironmentsDirName), ".amenv"},
}

func hasSuffix(suffix string) func(string) bool {
	return func(path string) bool { return strings.HasSuffix(path, suffix) }
}

func containsDir(dir string) func(string) bool {
	return func(path string) bool { return strings.Contains(path, dir) }
}

// OutputExt returns the output extension for a source path by walking the
// extension rule chain top to bottom. Sources matching no rule map to
// FallbackExt.
func OutputExt(sourcePath string) string {
	normalized := filepath.ToSlash(sourcePath)
	for _, rule := range extensionRules {
		if rule.match(normalized) {
			return rule.ext
		}
	}
	return FallbackExt
}

// MapOutputPath maps a JSON source path to its binary artifact path: the
// .json extension is replaced according to the rule chain and the path
// prefix is rewritten from projectRoot to buildRoot, preserving the
// relative sub-path. The mapping is deterministic and total over sources
// enumerated from projectRoot.
func MapOutputPath(sourcePath, projectRoot, buildRoot string) (string, error) {
	rel, err := filepath.Rel(projectRoot, sourcePath)
	if err != nil {
		return "", fmt.Errorf("map output path for %s: %w", sourcePath, err)
	}

	// The extension rules see the full source path, not the relative one:
	// directory-segment matching must observe the same path the enumeration
	// produced (including any category-like segment in the project root
	// itself, a quirk kept for compatibility with existing projects).
	ext := OutputExt(sourcePath)
	rel = strings.TrimSuffix(rel, ".json") + ext

	return filepath.Join(buildRoot, rel), nil
}
