// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"kindling-cli/pkg/types"
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers. Execute is the single place that terminates the process.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
