// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the launcher's
// domain packages (anchor, compile, loader, launch). Each type carries
// semantic meaning and its own validation but no domain behavior.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types
