// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"os"
	"path/filepath"
)

// ResolveSchema searches the ordered search paths for a schema file with the
// given name and returns the first match. When no search path contains the
// file, the bare name is returned unchanged: resolution is deferred to the
// compiler invocation, which will produce its own diagnostic if the schema
// is truly missing. Absence is therefore a valid, silent outcome here.
func ResolveSchema(name string, searchPaths []string) string {
	for _, dir := range searchPaths {
		full := filepath.Join(dir, name)
		if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
			return full
		}
	}
	return name
}
