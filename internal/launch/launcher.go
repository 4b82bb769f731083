// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"kindling-cli/internal/anchor"
	"kindling-cli/internal/compile"
	"kindling-cli/internal/loader"
	"kindling-cli/pkg/types"
)

type (
	// Options are the per-invocation pipeline inputs. Zero values fall back
	// to the configured defaults in NewLauncher's consumers.
	Options struct {
		// Origin overrides the launcher origin. Nil means the running
		// executable's location.
		Origin *url.URL
		// ProgramName is the <ProgramName> of the anchor convention.
		ProgramName string
		// EntryModule is the compiled module name (artifact <module>.so).
		EntryModule types.SymbolName
		// EntryFunction is the entry symbol name.
		EntryFunction types.SymbolName
		// SourceSuffix is the source-file suffix convention.
		SourceSuffix string
		// Toolchain overrides the compiler binary. Empty means "go".
		Toolchain string
		// Strict promotes toolchain warnings to build failures.
		Strict bool
		// PreCompileHook is an optional shell script run in the source root
		// before compilation. Empty means no hook.
		PreCompileHook string
		// Stdout and Stderr receive hook output and toolchain diagnostics.
		Stdout io.Writer
		Stderr io.Writer
	}

	// Launcher owns one Resolve → Compile → Load → Invoke cycle. Stages run
	// strictly in order; a stage failure aborts the rest of the pipeline.
	Launcher struct {
		// NewLoader builds the ModuleLoader for a resolved artifacts
		// directory. Tests inject fakes here; the default is the plugin
		// loader.
		NewLoader func(classesDir types.FilesystemPath) loader.ModuleLoader
	}
)

// NewLauncher returns a Launcher using the production plugin loader.
func NewLauncher() *Launcher {
	return &Launcher{
		NewLoader: func(classesDir types.FilesystemPath) loader.ModuleLoader {
			return loader.NewPluginLoader(classesDir)
		},
	}
}

// Resolve runs the location stage only and returns the anchor location.
func (l *Launcher) Resolve(opts Options) (anchor.Location, error) {
	origin := opts.Origin
	if origin == nil {
		var err error
		origin, err = anchor.DefaultOrigin()
		if err != nil {
			return anchor.Location{}, err
		}
	}
	return anchor.Resolve(origin, opts.ProgramName)
}

// Compile runs the location and compilation stages and returns the compiled
// artifact path.
func (l *Launcher) Compile(ctx context.Context, opts Options) (types.FilesystemPath, error) {
	loc, err := l.Resolve(opts)
	if err != nil {
		return "", err
	}
	return l.compileAt(ctx, opts, loc)
}

// Run executes the full pipeline, passing args verbatim to the entry
// function. A nil error means the entry function returned normally; panics
// raised by the invoked program propagate unrecovered.
func (l *Launcher) Run(ctx context.Context, opts Options, args []string) error {
	loc, err := l.Resolve(opts)
	if err != nil {
		return err
	}

	if _, err := l.compileAt(ctx, opts, loc); err != nil {
		return err
	}

	mod, err := l.newLoader(loc.ClassesDir()).LoadModule(opts.EntryModule)
	if err != nil {
		return err
	}

	return loader.Invoke(mod, opts.EntryFunction, args)
}

// compileAt runs the hook and compilation stages against a resolved anchor.
func (l *Launcher) compileAt(ctx context.Context, opts Options, loc anchor.Location) (types.FilesystemPath, error) {
	if opts.PreCompileHook != "" {
		if err := compile.RunHook(ctx, opts.PreCompileHook, loc.SrcDir(), opts.stdout(), opts.stderr()); err != nil {
			return "", err
		}
	}

	c := compile.New()
	if opts.Toolchain != "" {
		c.Tool = opts.Toolchain
	}
	c.Suffix = opts.SourceSuffix
	c.Strict = opts.Strict
	c.Stderr = opts.stderr()

	artifact, err := c.Compile(ctx, loc.SrcDir(), loc.ClassesDir(), opts.EntryModule)
	if err != nil {
		return "", err
	}

	slog.Debug("compiled source tree", "anchor", loc.Dir, "artifact", artifact)
	return artifact, nil
}

// Clean removes the compiled-artifacts directory. The pipeline itself never
// invalidates artifacts between runs; this is the explicit escape hatch.
func (l *Launcher) Clean(opts Options) (types.FilesystemPath, error) {
	loc, err := l.Resolve(opts)
	if err != nil {
		return "", err
	}
	classes := loc.ClassesDir()
	if err := os.RemoveAll(classes.String()); err != nil {
		return "", fmt.Errorf("failed to remove artifacts directory %s: %w", classes, err)
	}
	return classes, nil
}

func (l *Launcher) newLoader(classesDir types.FilesystemPath) loader.ModuleLoader {
	if l.NewLoader == nil {
		return loader.NewPluginLoader(classesDir)
	}
	return l.NewLoader(classesDir)
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}
