// SPDX-License-Identifier: MPL-2.0

// Package anchor resolves the launcher's own runtime origin into the anchor
// location that roots the fixed <anchor>/<program>/{src,classes} layout.
//
// The origin is a file:// URL. Where the launcher runs from decides the base
// directory: a loose executable (or packaged archive) anchors at its parent
// directory, while a directory origin anchors at the directory itself.
package anchor
