// SPDX-License-Identifier: MPL-2.0

// Package pipeline orchestrates the incremental asset build: it enumerates
// JSON sources per asset category, resolves each category's schema, maps
// sources to artifact paths under the build root, and invokes the external
// compiler for stale units only. The symmetric Clean operation deletes every
// artifact a build would produce.
package pipeline
