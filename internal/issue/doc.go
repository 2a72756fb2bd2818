// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error values: what
// operation failed, which resource was involved, and concrete suggestions
// for fixing it.
package issue
