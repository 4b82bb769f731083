// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"

	"kindling-cli/pkg/types"
)

var (
	// ErrNotResolved is the sentinel error wrapped by ResolutionError.
	ErrNotResolved = errors.New("entry point not resolved")

	// ErrBadSignature is the sentinel error wrapped by SignatureError.
	ErrBadSignature = errors.New("entry point signature mismatch")
)

type (
	// SignatureKind identifies which part of the entry contract a symbol
	// violated. Each kind maps to its own reserved exit code.
	SignatureKind int

	// ResolutionError is returned when the entry module, the entry symbol,
	// or a symbol of the required call shape cannot be found by name.
	// It propagates without a reserved exit code of its own.
	ResolutionError struct {
		// What names the missing thing: "module", "symbol", or "shape".
		What  string
		Name  types.SymbolName
		Cause error
	}

	// SignatureError is returned when the entry symbol exists but breaks the
	// signature contract: it declares a result, or it is not invocable
	// without an instance.
	SignatureError struct {
		Symbol types.SymbolName
		Kind   SignatureKind
		// Type is the offending symbol's type, for the diagnostic message.
		Type string
	}
)

const (
	// SignatureReturn means the entry function declares a result.
	SignatureReturn SignatureKind = iota
	// SignatureBinding means the entry symbol is not a plain function and
	// would require an instance to invoke.
	SignatureBinding
)

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("entry %s %q not found: %v", e.What, e.Name, e.Cause)
	}
	return fmt.Sprintf("entry %s %q not found", e.What, e.Name)
}

// Unwrap returns ErrNotResolved for errors.Is() compatibility.
func (e *ResolutionError) Unwrap() error { return ErrNotResolved }

// Error implements the error interface.
func (e *SignatureError) Error() string {
	switch e.Kind {
	case SignatureReturn:
		return fmt.Sprintf("entry function %q must return no value (got %s)", e.Symbol, e.Type)
	case SignatureBinding:
		return fmt.Sprintf("entry symbol %q must be invocable without an instance (got %s)", e.Symbol, e.Type)
	default:
		return fmt.Sprintf("entry symbol %q has an invalid signature (got %s)", e.Symbol, e.Type)
	}
}

// Unwrap returns ErrBadSignature for errors.Is() compatibility.
func (e *SignatureError) Unwrap() error { return ErrBadSignature }
