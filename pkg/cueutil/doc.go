// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds shared helpers for validating CUE input: file size
// guards and error formatting with field paths.
package cueutil
