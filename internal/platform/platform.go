// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
package platform

import (
	"runtime"
	"strings"
)

// Windows is the GOOS value for Windows builds.
const Windows = "windows"

// ExeSuffix returns the executable file suffix for the current platform:
// ".exe" on Windows, empty everywhere else.
func ExeSuffix() string {
	return exeSuffixFor(runtime.GOOS)
}

// EnsureExeSuffix appends the platform executable suffix to path when the
// platform requires one and the path does not already carry it. The check is
// case-insensitive because Windows filenames are.
func EnsureExeSuffix(path string) string {
	return ensureExeSuffixFor(runtime.GOOS, path)
}

func exeSuffixFor(goos string) string {
	if goos == Windows {
		return ".exe"
	}
	return ""
}

func ensureExeSuffixFor(goos, path string) string {
	suffix := exeSuffixFor(goos)
	if suffix == "" || path == "" {
		return path
	}
	if strings.HasSuffix(strings.ToLower(path), suffix) {
		return path
	}
	return path + suffix
}
