// SPDX-License-Identifier: MPL-2.0

// Package loader resolves the compiled entry module from the artifacts
// directory, validates the entry symbol's signature contract, and invokes it
// with the process argument vector.
//
// A loaded module lives in its own namespace: it shares the process runtime
// and standard library with the launcher but cannot see the launcher's
// internal packages, so a launched program can never clash with the
// launcher's own implementation.
package loader
