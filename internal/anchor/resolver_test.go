// SPDX-License-Identifier: MPL-2.0

package anchor

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRejectsNonFileScheme(t *testing.T) {
	t.Parallel()

	origin := &url.URL{Scheme: "https", Host: "example.com", Path: "/kindling"}

	_, err := Resolve(origin, "kindling")
	if err == nil {
		t.Fatal("Resolve() returned nil error for https origin")
	}
	if !errors.Is(err, ErrNonLocalOrigin) {
		t.Errorf("error does not wrap ErrNonLocalOrigin: %v", err)
	}

	var nle *NonLocalOriginError
	if !errors.As(err, &nle) {
		t.Fatalf("error is not a *NonLocalOriginError: %v", err)
	}
	if nle.Scheme != "https" {
		t.Errorf("NonLocalOriginError.Scheme = %q, want %q", nle.Scheme, "https")
	}
}

func TestResolveLooseFileAnchorsAtParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "kindling")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create fake executable: %v", err)
	}

	loc, err := Resolve(&url.URL{Scheme: "file", Path: filepath.ToSlash(exe)}, "kindling")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.Form != FormLooseFile {
		t.Errorf("Form = %v, want %v", loc.Form, FormLooseFile)
	}
	if got, want := loc.Dir.String(), filepath.Join(dir, "kindling"); got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
}

func TestResolveDirectoryAnchorsAtItself(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	loc, err := Resolve(&url.URL{Scheme: "file", Path: filepath.ToSlash(dir)}, "kindling")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.Form != FormDirectory {
		t.Errorf("Form = %v, want %v", loc.Form, FormDirectory)
	}
	if got, want := loc.Dir.String(), filepath.Join(dir, "kindling"); got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
}

func TestResolveMissingOriginTreatedAsDirectory(t *testing.T) {
	t.Parallel()

	// An origin that cannot be stat'ed falls back to the directory strategy,
	// so the anchor still resolves somewhere deterministic.
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	loc, err := Resolve(&url.URL{Scheme: "file", Path: filepath.ToSlash(missing)}, "kindling")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.Form != FormDirectory {
		t.Errorf("Form = %v, want %v", loc.Form, FormDirectory)
	}
	if got, want := loc.Dir.String(), filepath.Join(missing, "kindling"); got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
}

func TestLocationLayout(t *testing.T) {
	t.Parallel()

	loc := Location{Dir: "/opt/anchor/kindling"}
	if got, want := loc.SrcDir().String(), filepath.Join("/opt/anchor/kindling", "src"); got != want {
		t.Errorf("SrcDir() = %q, want %q", got, want)
	}
	if got, want := loc.ClassesDir().String(), filepath.Join("/opt/anchor/kindling", "classes"); got != want {
		t.Errorf("ClassesDir() = %q, want %q", got, want)
	}
}

func TestNormalizeOriginPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "plain path", origin: "file:///opt/kindling", want: "/opt/kindling"},
		{name: "empty authority", origin: "file:///opt/kindling/bin", want: "/opt/kindling/bin"},
		{name: "non-empty authority folds into UNC path", origin: "file://host/share/kindling", want: "//host/share/kindling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.origin)
			if err != nil {
				t.Fatalf("url.Parse(%q) error = %v", tt.origin, err)
			}
			if got := normalizeOriginPath(u); got != filepath.FromSlash(tt.want) {
				t.Errorf("normalizeOriginPath(%q) = %q, want %q", tt.origin, got, filepath.FromSlash(tt.want))
			}
		})
	}
}

func TestDefaultOrigin(t *testing.T) {
	t.Parallel()

	origin, err := DefaultOrigin()
	if err != nil {
		t.Fatalf("DefaultOrigin() error = %v", err)
	}
	if origin.Scheme != "file" {
		t.Errorf("Scheme = %q, want %q", origin.Scheme, "file")
	}
	if origin.Path == "" {
		t.Error("Path is empty")
	}
}
