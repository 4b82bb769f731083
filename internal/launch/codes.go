// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"

	"kindling-cli/internal/anchor"
	"kindling-cli/internal/compile"
	"kindling-cli/internal/loader"
	"kindling-cli/pkg/types"
)

// Reserved exit codes. These are a stable part of the external contract.
const (
	// CodeSuccess means the entry function returned normally.
	CodeSuccess types.ExitCode = 0
	// CodeNonLocalOrigin means the launcher origin is not a file location.
	CodeNonLocalOrigin types.ExitCode = 10
	// CodeCompileFailed means a toolchain pass reported failure.
	CodeCompileFailed types.ExitCode = 20
	// CodeNoSources means no source files were found under the source root.
	CodeNoSources types.ExitCode = 30
	// CodeEntryNotVoid means the entry function declares a result.
	CodeEntryNotVoid types.ExitCode = 40
	// CodeEntryNotStatic means the entry symbol is not invocable without an
	// instance.
	CodeEntryNotStatic types.ExitCode = 41
)

// ExitCodeFor maps a pipeline error to its reserved exit code. The second
// result is false for errors with no reserved mapping (resolution failures,
// hook failures, configuration failures), which propagate with a generic
// non-zero status.
func ExitCodeFor(err error) (types.ExitCode, bool) {
	if err == nil {
		return CodeSuccess, true
	}

	var sigErr *loader.SignatureError
	switch {
	case errors.Is(err, anchor.ErrNonLocalOrigin):
		return CodeNonLocalOrigin, true
	case errors.Is(err, compile.ErrCompileFailed):
		return CodeCompileFailed, true
	case errors.Is(err, compile.ErrNoSources):
		return CodeNoSources, true
	case errors.As(err, &sigErr):
		if sigErr.Kind == loader.SignatureBinding {
			return CodeEntryNotStatic, true
		}
		return CodeEntryNotVoid, true
	default:
		return 1, false
	}
}
