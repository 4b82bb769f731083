// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"reflect"

	"kindling-cli/pkg/types"
)

// argsType is the required parameter shape of the entry function.
var argsType = reflect.TypeOf([]string(nil))

// Invoke looks up the named entry function on module, validates its
// signature contract, and calls it with the process argument vector.
//
// The contract: a plain function taking exactly one string-sequence
// parameter (either []string or variadic ...string) and returning no value.
// Violations surface as SignatureError; a missing symbol or a wrong
// parameter shape surfaces as ResolutionError.
//
// Any panic raised by the invoked program propagates unrecovered: the
// launcher does not mask the invoked program's own failure semantics.
func Invoke(module Module, function types.SymbolName, args []string) error {
	sym, err := module.Lookup(function)
	if err != nil {
		return err
	}

	fn, err := validateEntry(sym, function)
	if err != nil {
		return err
	}

	if args == nil {
		args = []string{}
	}
	in := []reflect.Value{reflect.ValueOf(args)}
	if fn.Type().IsVariadic() {
		fn.CallSlice(in)
	} else {
		fn.Call(in)
	}
	return nil
}

// validateEntry checks the looked-up symbol against the entry contract and
// returns it as a callable function value.
func validateEntry(sym any, function types.SymbolName) (reflect.Value, error) {
	rv := reflect.ValueOf(sym)

	// Symbol lookup surfaces package-level variables as pointers; indirect
	// once so a variable holding the entry function is callable too.
	if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Func {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Func {
		return reflect.Value{}, &SignatureError{
			Symbol: function,
			Kind:   SignatureBinding,
			Type:   reflect.TypeOf(sym).String(),
		}
	}

	t := rv.Type()
	if t.NumOut() != 0 {
		return reflect.Value{}, &SignatureError{
			Symbol: function,
			Kind:   SignatureReturn,
			Type:   t.String(),
		}
	}

	if t.NumIn() != 1 || t.In(0) != argsType {
		return reflect.Value{}, &ResolutionError{What: "shape", Name: function, Cause: nil}
	}

	return rv, nil
}
