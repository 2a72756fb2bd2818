// SPDX-License-Identifier: MPL-2.0

// Package config assembles the per-run build options from explicit flags,
// the optional project settings file, and SDK environment defaults. It is
// the only package that reads environment state; everything downstream
// receives an immutable Options value.
package config
