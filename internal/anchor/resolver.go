// SPDX-License-Identifier: MPL-2.0

package anchor

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"kindling-cli/pkg/types"
)

const (
	// SrcDirName is the source subdirectory of the anchor layout.
	SrcDirName = "src"
	// ClassesDirName is the compiled-artifacts subdirectory of the anchor layout.
	ClassesDirName = "classes"
)

// ErrNonLocalOrigin is the sentinel error wrapped by NonLocalOriginError.
var ErrNonLocalOrigin = errors.New("origin is not a local file location")

type (
	// DeploymentForm describes how the launcher's own code is deployed,
	// which decides the anchor base directory strategy.
	DeploymentForm int

	// Location is the resolved anchor location. It is derived once per
	// invocation and immutable afterward.
	Location struct {
		// Dir is the absolute anchor directory: <base>/<program-name>.
		Dir types.FilesystemPath
		// Form records which deployment-form strategy produced the base.
		Form DeploymentForm
	}

	// NonLocalOriginError is returned when the launcher origin carries a
	// scheme other than "file". It wraps ErrNonLocalOrigin for errors.Is().
	NonLocalOriginError struct {
		Scheme string
	}
)

const (
	// FormLooseFile means the origin is a regular file (a loose executable
	// or a packaged archive); the base is its parent directory.
	FormLooseFile DeploymentForm = iota
	// FormDirectory means the origin is a directory of already-built units;
	// the base is the directory itself.
	FormDirectory
)

// String returns a human-readable deployment form name.
func (f DeploymentForm) String() string {
	switch f {
	case FormLooseFile:
		return "loose file"
	case FormDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e *NonLocalOriginError) Error() string {
	return fmt.Sprintf("must be run from a file origin, found scheme %q", e.Scheme)
}

// Unwrap returns ErrNonLocalOrigin for errors.Is() compatibility.
func (e *NonLocalOriginError) Unwrap() error { return ErrNonLocalOrigin }

// SrcDir returns the source root of the anchor layout.
func (l Location) SrcDir() types.FilesystemPath {
	return l.Dir.Join(SrcDirName)
}

// ClassesDir returns the compiled-artifacts directory of the anchor layout.
func (l Location) ClassesDir() types.FilesystemPath {
	return l.Dir.Join(ClassesDirName)
}

// DefaultOrigin returns the launcher's own origin as a file:// URL, derived
// from the running executable.
func DefaultOrigin() (*url.URL, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(exe)}, nil
}

// Resolve turns the launcher origin into the anchor Location for programName.
//
// Non-"file" schemes are rejected with NonLocalOriginError. Origins with a
// non-empty authority are normalized first (see normalizeOriginPath). A
// regular-file origin anchors at its parent directory; anything else,
// including an origin that cannot be stat'ed, is treated as a directory.
func Resolve(origin *url.URL, programName string) (Location, error) {
	if origin.Scheme != "file" {
		return Location{}, &NonLocalOriginError{Scheme: origin.Scheme}
	}

	base := normalizeOriginPath(origin)
	form := FormDirectory
	if info, err := os.Stat(base); err == nil && info.Mode().IsRegular() {
		form = FormLooseFile
		base = filepath.Dir(base)
	}

	return Location{
		Dir:  types.FilesystemPath(filepath.Join(base, programName)),
		Form: form,
	}, nil
}

// normalizeOriginPath converts a file:// URL to a filesystem path.
//
// Some encodings of local paths carry an empty-but-present or non-empty
// authority component (file://host/share/...). A non-empty authority is
// folded back into the path as a UNC-style //host/... prefix; if the result
// is not usable the unmodified URL path is used instead.
func normalizeOriginPath(origin *url.URL) string {
	path := origin.Path
	if origin.Host != "" {
		rewritten := "//" + origin.Host + origin.Path
		if _, err := url.Parse("file:" + rewritten); err != nil {
			// Weird - don't adjust.
			slog.Warn("failed to normalize origin authority, using path as-is",
				"origin", origin.String(), "error", err)
		} else {
			path = rewritten
		}
	}
	return filepath.FromSlash(path)
}
