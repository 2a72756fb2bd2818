// SPDX-License-Identifier: MPL-2.0

// Package flatc invokes the external FlatBuffers schema compiler to turn a
// JSON asset definition into its binary artifact. The compiler is a black
// box: this package builds the command line, runs it synchronously, and
// translates launch failures and non-zero exits into BuildError values.
package flatc
