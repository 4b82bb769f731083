// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidSymbolName is the sentinel error wrapped by InvalidSymbolNameError.
var ErrInvalidSymbolName = errors.New("invalid symbol name")

type (
	// SymbolName represents the name of a module or entry symbol resolved at
	// load time. A valid name is a non-empty Go identifier: a letter or
	// underscore followed by letters, digits, or underscores.
	// The zero value ("") is invalid.
	SymbolName string

	// InvalidSymbolNameError is returned when a SymbolName value is empty or
	// not identifier-shaped.
	InvalidSymbolNameError struct {
		Value SymbolName
	}
)

// String returns the string representation of the SymbolName.
func (n SymbolName) String() string { return string(n) }

// IsValid returns whether the SymbolName is valid.
// A valid name is a non-empty identifier.
func (n SymbolName) IsValid() (bool, []error) {
	if n == "" {
		return false, []error{&InvalidSymbolNameError{Value: n}}
	}
	for i, r := range n {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false, []error{&InvalidSymbolNameError{Value: n}}
	}
	return true, nil
}

// IsExported returns true if the name starts with an upper-case letter, i.e.
// it is visible to symbol lookup without the loader's visibility override.
func (n SymbolName) IsExported() bool {
	if n == "" {
		return false
	}
	return unicode.IsUpper([]rune(string(n))[0])
}

// Exported returns the exported spelling of the name: the first rune
// upper-cased. Already-exported names are returned unchanged.
func (n SymbolName) Exported() SymbolName {
	if n == "" || n.IsExported() {
		return n
	}
	runes := []rune(string(n))
	runes[0] = unicode.ToUpper(runes[0])
	return SymbolName(runes)
}

// Error implements the error interface for InvalidSymbolNameError.
func (e *InvalidSymbolNameError) Error() string {
	return fmt.Sprintf("invalid symbol name %q: must be a non-empty identifier", e.Value)
}

// Unwrap returns ErrInvalidSymbolName for errors.Is() compatibility.
func (e *InvalidSymbolNameError) Unwrap() error { return ErrInvalidSymbolName }
