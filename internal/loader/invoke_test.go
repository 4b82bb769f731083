// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"strings"
	"testing"

	"kindling-cli/pkg/types"
)

// fakeModule resolves symbols from a map, standing in for a loaded plugin.
type fakeModule struct {
	symbols map[types.SymbolName]any
}

func (m *fakeModule) Name() types.SymbolName { return "main" }

func (m *fakeModule) Lookup(symbol types.SymbolName) (any, error) {
	if sym, ok := m.symbols[symbol]; ok {
		return sym, nil
	}
	if !symbol.IsExported() {
		if sym, ok := m.symbols[symbol.Exported()]; ok {
			return sym, nil
		}
	}
	return nil, &ResolutionError{What: "symbol", Name: symbol}
}

func TestInvokePassesArgumentVectorUnchanged(t *testing.T) {
	t.Parallel()

	var got []string
	mod := &fakeModule{symbols: map[types.SymbolName]any{
		"Main": func(args []string) { got = append([]string(nil), args...) },
	}}

	want := []string{"a", "b", "--flag=c"}
	if err := Invoke(mod, "Main", want); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("entry observed %d args, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInvokeAcceptsVariadicEntry(t *testing.T) {
	t.Parallel()

	var got []string
	mod := &fakeModule{symbols: map[types.SymbolName]any{
		"Main": func(args ...string) { got = args },
	}}

	if err := Invoke(mod, "Main", []string{"x", "y"}); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("entry observed %v, want [x y]", got)
	}
}

func TestInvokeNilArgsBecomesEmptyVector(t *testing.T) {
	t.Parallel()

	called := false
	var got []string
	mod := &fakeModule{symbols: map[types.SymbolName]any{
		"Main": func(args []string) { called, got = true, args },
	}}

	if err := Invoke(mod, "Main", nil); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !called {
		t.Fatal("entry function was not invoked")
	}
	if got == nil || len(got) != 0 {
		t.Errorf("entry observed %v, want empty vector", got)
	}
}

func TestInvokeFunctionVariableSymbol(t *testing.T) {
	t.Parallel()

	// Symbol lookup surfaces package-level variables as pointers.
	called := false
	entry := func(args []string) { called = true }
	mod := &fakeModule{symbols: map[types.SymbolName]any{"Main": &entry}}

	if err := Invoke(mod, "Main", []string{"a"}); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !called {
		t.Error("entry function variable was not invoked")
	}
}

func TestInvokeUnexportedSpellingResolvesExported(t *testing.T) {
	t.Parallel()

	called := false
	mod := &fakeModule{symbols: map[types.SymbolName]any{
		"Main": func(args []string) { called = true },
	}}

	if err := Invoke(mod, "main", []string{}); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !called {
		t.Error("unexported spelling did not resolve the exported entry")
	}
}

func TestInvokeMissingSymbol(t *testing.T) {
	t.Parallel()

	mod := &fakeModule{symbols: map[types.SymbolName]any{}}

	err := Invoke(mod, "Main", nil)
	if !errors.Is(err, ErrNotResolved) {
		t.Fatalf("Invoke() error = %v, want ResolutionError", err)
	}
}

func TestInvokeRejectsEntryWithResult(t *testing.T) {
	t.Parallel()

	invoked := false
	mod := &fakeModule{symbols: map[types.SymbolName]any{
		"Main": func(args []string) error { invoked = true; return nil },
	}}

	err := Invoke(mod, "Main", nil)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("Invoke() error = %v, want SignatureError", err)
	}

	var se *SignatureError
	if !errors.As(err, &se) {
		t.Fatalf("error is not a *SignatureError: %v", err)
	}
	if se.Kind != SignatureReturn {
		t.Errorf("SignatureError.Kind = %v, want SignatureReturn", se.Kind)
	}
	if !strings.Contains(se.Error(), "Main") {
		t.Errorf("error message does not name the symbol: %v", se)
	}
	if invoked {
		t.Error("entry with a result was invoked")
	}
}

func TestInvokeRejectsNonFunctionSymbol(t *testing.T) {
	t.Parallel()

	value := "not callable"
	mod := &fakeModule{symbols: map[types.SymbolName]any{"Main": &value}}

	err := Invoke(mod, "Main", nil)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("Invoke() error = %v, want SignatureError", err)
	}

	var se *SignatureError
	if !errors.As(err, &se) {
		t.Fatalf("error is not a *SignatureError: %v", err)
	}
	if se.Kind != SignatureBinding {
		t.Errorf("SignatureError.Kind = %v, want SignatureBinding", se.Kind)
	}
}

func TestInvokeRejectsWrongParameterShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry any
	}{
		{name: "no parameters", entry: func() {}},
		{name: "int parameter", entry: func(n int) {}},
		{name: "two parameters", entry: func(a []string, b []string) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mod := &fakeModule{symbols: map[types.SymbolName]any{"Main": tt.entry}}

			err := Invoke(mod, "Main", nil)
			if !errors.Is(err, ErrNotResolved) {
				t.Fatalf("Invoke() error = %v, want shape ResolutionError", err)
			}
		})
	}
}
