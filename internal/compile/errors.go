// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"errors"
	"fmt"

	"kindling-cli/pkg/types"
)

var (
	// ErrNoSources is the sentinel error wrapped by NoSourceError.
	ErrNoSources = errors.New("no source files found")

	// ErrCompileFailed is the sentinel error wrapped by CompileError.
	ErrCompileFailed = errors.New("compilation failed")
)

type (
	// Stage identifies which toolchain pass failed.
	Stage string

	// NoSourceError is returned when the recursive enumeration of the source
	// root finds no files matching the source suffix. The toolchain is never
	// invoked in that case.
	NoSourceError struct {
		Root   types.FilesystemPath
		Suffix string
	}

	// CompileError is returned when a toolchain pass reports failure. It
	// carries no diagnostic text of its own: the toolchain writes its
	// diagnostics to the configured stderr channel directly.
	CompileError struct {
		Stage Stage
		Cause error
	}
)

const (
	// StageVet is the strict diagnostics pass.
	StageVet Stage = "vet"
	// StageBuild is the batch compilation pass.
	StageBuild Stage = "build"
)

// Error implements the error interface.
func (e *NoSourceError) Error() string {
	return fmt.Sprintf("no %s source files found under %s", e.Suffix, e.Root)
}

// Unwrap returns ErrNoSources for errors.Is() compatibility.
func (e *NoSourceError) Unwrap() error { return ErrNoSources }

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("toolchain %s pass failed: %v", e.Stage, e.Cause)
}

// Unwrap returns ErrCompileFailed for errors.Is() compatibility.
func (e *CompileError) Unwrap() error { return ErrCompileFailed }
