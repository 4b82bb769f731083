// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"log/slog"
	"plugin"

	"kindling-cli/pkg/types"
)

type (
	// Module is a loaded compiled unit that can resolve symbols by name.
	Module interface {
		// Name returns the module's configured name.
		Name() types.SymbolName
		// Lookup resolves a symbol by name, or returns a ResolutionError.
		Lookup(symbol types.SymbolName) (any, error)
	}

	// ModuleLoader resolves named modules from a compiled-artifacts
	// directory.
	//
	// Implementations carry a documented visibility override for the entry
	// point: when a symbol name arrives in unexported spelling, lookup
	// retries with the exported spelling, so an entry point configured as
	// "main" still resolves. The override applies to symbol lookup only.
	ModuleLoader interface {
		LoadModule(name types.SymbolName) (Module, error)
	}

	// PluginLoader is the production ModuleLoader, backed by the Go plugin
	// runtime. Module name <m> maps to the artifact <ClassesDir>/<m>.so.
	PluginLoader struct {
		ClassesDir types.FilesystemPath
	}

	pluginModule struct {
		name types.SymbolName
		p    *plugin.Plugin
	}
)

// NewPluginLoader returns a ModuleLoader rooted at the given artifacts
// directory.
func NewPluginLoader(classesDir types.FilesystemPath) *PluginLoader {
	return &PluginLoader{ClassesDir: classesDir}
}

// LoadModule opens the named plugin artifact. The plugin runtime runs the
// module's package initializers at open time; lookup itself adds no further
// side effects.
func (l *PluginLoader) LoadModule(name types.SymbolName) (Module, error) {
	path := l.ClassesDir.Join(name.String() + ".so")
	slog.Debug("loading compiled module", "artifact", path)

	p, err := plugin.Open(path.String())
	if err != nil {
		return nil, &ResolutionError{What: "module", Name: name, Cause: err}
	}
	return &pluginModule{name: name, p: p}, nil
}

// Name returns the module's configured name.
func (m *pluginModule) Name() types.SymbolName { return m.name }

// Lookup resolves a symbol, applying the exported-spelling retry for names
// given in unexported spelling.
func (m *pluginModule) Lookup(symbol types.SymbolName) (any, error) {
	sym, err := m.p.Lookup(symbol.String())
	if err != nil && !symbol.IsExported() {
		if exported, retryErr := m.p.Lookup(symbol.Exported().String()); retryErr == nil {
			return exported, nil
		}
	}
	if err != nil {
		return nil, &ResolutionError{What: "symbol", Name: symbol, Cause: err}
	}
	return sym, nil
}
