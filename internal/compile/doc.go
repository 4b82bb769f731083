// SPDX-License-Identifier: MPL-2.0

// Package compile enumerates the source tree under the anchor's src directory
// and drives the Go toolchain to produce the compiled plugin artifact in the
// classes directory.
//
// The toolchain is invoked once, as a single batch job, with the source root
// as the working directory so in-tree cross-file references resolve without
// an external search path. In strict mode every vet finding is promoted to a
// build failure.
package compile
