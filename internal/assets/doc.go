// SPDX-License-Identifier: MPL-2.0

// Package assets defines the fixed catalog of audio asset categories and the
// pure path-level rules derived from it: which directory a category's JSON
// sources live in, which binary schema compiles them, and which output
// extension and path a compiled artifact receives.
package assets
