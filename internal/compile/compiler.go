// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"kindling-cli/pkg/types"
)

// Compiler invokes the Go toolchain against an enumerated source tree.
type Compiler struct {
	// Tool is the toolchain binary, "go" by default.
	Tool string
	// Suffix is the source-file suffix convention, ".go" by default.
	Suffix string
	// Strict promotes every vet finding to a build failure.
	Strict bool
	// Stderr receives the toolchain's own diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

// New returns a Compiler with the default toolchain settings.
func New() *Compiler {
	return &Compiler{
		Tool:   "go",
		Suffix: ".go",
		Strict: true,
		Stderr: os.Stderr,
	}
}

// Compile enumerates the sources under src and batch-compiles them into a
// plugin artifact <classes>/<module>.so. It returns the artifact path.
//
// The classes directory is created if missing. Partial output of a failed
// build is left on disk; the pipeline never cleans it up.
func (c *Compiler) Compile(ctx context.Context, src, classes types.FilesystemPath, module types.SymbolName) (types.FilesystemPath, error) {
	sources, err := EnumerateSources(src, c.suffix())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(classes.String(), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifacts directory %s: %w", classes, err)
	}

	artifact := classes.Join(module.String() + ".so")
	slog.Debug("compiling source tree",
		"src", src, "artifact", artifact, "files", len(sources), "strict", c.Strict)

	if c.Strict {
		if err := c.runTool(ctx, src, c.vetArgs(src, sources)); err != nil {
			return "", &CompileError{Stage: StageVet, Cause: err}
		}
	}

	if err := c.runTool(ctx, src, c.buildArgs(src, artifact, sources)); err != nil {
		return "", &CompileError{Stage: StageBuild, Cause: err}
	}

	return artifact, nil
}

// vetArgs builds the strict-diagnostics invocation. A tree carrying its own
// go.mod is vetted as a package; a bare tree is vetted file by file.
func (c *Compiler) vetArgs(src types.FilesystemPath, sources []types.FilesystemPath) []string {
	args := []string{"vet"}
	if hasModFile(src) {
		return append(args, "./...")
	}
	for _, s := range sources {
		args = append(args, s.String())
	}
	return args
}

// buildArgs builds the single batch-compilation invocation. The plugin build
// mode is what lets the artifact load back into this process.
func (c *Compiler) buildArgs(src types.FilesystemPath, artifact types.FilesystemPath, sources []types.FilesystemPath) []string {
	args := []string{"build", "-buildmode=plugin", "-o", artifact.String()}
	if hasModFile(src) {
		return append(args, ".")
	}
	for _, s := range sources {
		args = append(args, s.String())
	}
	return args
}

// runTool executes one toolchain pass with src as the working directory so
// in-tree references resolve without an external search path.
func (c *Compiler) runTool(ctx context.Context, src types.FilesystemPath, args []string) error {
	cmd := exec.CommandContext(ctx, c.tool(), args...)
	cmd.Dir = src.String()
	cmd.Stdout = c.stderr()
	cmd.Stderr = c.stderr()
	return cmd.Run()
}

func (c *Compiler) tool() string {
	if c.Tool == "" {
		return "go"
	}
	return c.Tool
}

func (c *Compiler) suffix() string {
	if c.Suffix == "" {
		return ".go"
	}
	return c.Suffix
}

func (c *Compiler) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

func hasModFile(src types.FilesystemPath) bool {
	info, err := os.Stat(filepath.Join(src.String(), "go.mod"))
	return err == nil && info.Mode().IsRegular()
}
