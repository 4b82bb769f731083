// SPDX-License-Identifier: MPL-2.0

// Package issue carries user-facing error context: ActionableError wraps
// failures with operation/resource/suggestion metadata, and the issue
// registry holds rendered explanations for every reserved exit code.
package issue
