// SPDX-License-Identifier: MPL-2.0

package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"kindling-cli/pkg/types"
)

// RunHook interprets a pre-compile hook script in-process with the source
// root as the working directory. The hook runs in the embedded shell, so it
// behaves the same on every platform and needs no system shell.
//
// A hook failure aborts the pipeline as a propagated error; it is not a
// compilation failure and carries no reserved exit code.
func RunHook(ctx context.Context, script string, dir types.FilesystemPath, stdout, stderr io.Writer) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "pre_compile")
	if err != nil {
		return fmt.Errorf("failed to parse pre-compile hook: %w", err)
	}

	runner, err := interp.New(
		interp.Dir(dir.String()),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create hook interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return fmt.Errorf("pre-compile hook exited with status %d", int(exitStatus))
		}
		return fmt.Errorf("pre-compile hook failed: %w", err)
	}
	return nil
}
