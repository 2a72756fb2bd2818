// SPDX-License-Identifier: MPL-2.0

package pipeline

import "github.com/bmatcuk/doublestar/v4"

// doublestarGlob expands a `**`-capable glob against the filesystem,
// matching regular files only so a directory named like an asset file can
// never be fed to the compiler.
func doublestarGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
}
