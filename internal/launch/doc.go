// SPDX-License-Identifier: MPL-2.0

// Package launch sequences the pipeline: Resolve the anchor, Compile the
// source tree, Load the entry module, Invoke the entry function. Control
// flow is strictly linear and fail-fast; each stage returns a typed error
// and no stage terminates the process. The CLI layer owns the mapping from
// stage errors to the reserved exit codes.
package launch
