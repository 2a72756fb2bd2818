// SPDX-License-Identifier: MPL-2.0

package pipeline

import "os"

// NeedsRebuild reports whether targetPath must be rebuilt from sourcePath:
// true when the target does not exist, or when the source's modification
// time is strictly newer than the target's. Equal timestamps never trigger a
// rebuild; with coarse filesystem time resolution this can miss a rebuild
// when source and target land in the same tick, which is the accepted
// trade-off ("assume unchanged" on ties).
//
// A source that cannot be stat'ed carries no opinion and does not trigger a
// rebuild on its own. This covers schemas left as bare unresolved names,
// whose absence is diagnosed by the compiler invocation itself.
func NeedsRebuild(sourcePath, targetPath string) bool {
	target, err := os.Stat(targetPath)
	if err != nil {
		return true
	}

	source, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}

	return source.ModTime().After(target.ModTime())
}
