// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kindling-cli/internal/compile"
	"kindling-cli/internal/launch"
	"kindling-cli/pkg/types"
)

// runCmd executes the full pipeline: resolve, compile, load, invoke.
var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Compile the anchored source tree and run its entry function",
	Long: `Compile the source tree under <anchor>/<program>/src and invoke the
program's entry function in this process, passing the arguments through
verbatim.

The pipeline is strictly linear: resolve, compile, load, invoke. Each
failure mode has a stable exit code; see 'kindling explain'.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := launchOptions()
		if err != nil {
			return err
		}

		logger.Debug("starting pipeline", "program", opts.ProgramName, "args", args)
		return mapPipelineError(launch.NewLauncher().Run(cmd.Context(), opts, args))
	},
}

func init() {
	// Flags after the first positional argument belong to the launched
	// program, not to kindling.
	runCmd.Flags().SetInterspersed(false)
}

// launchOptions assembles the pipeline options from the loaded config and
// the global flags.
func launchOptions() (launch.Options, error) {
	origin, err := parseOriginFlag()
	if err != nil {
		return launch.Options{}, err
	}
	return launch.Options{
		Origin:         origin,
		ProgramName:    cfg.ProgramName,
		EntryModule:    types.SymbolName(cfg.Entry.Module),
		EntryFunction:  types.SymbolName(cfg.Entry.Function),
		SourceSuffix:   cfg.SourceSuffix,
		Strict:         cfg.Strict,
		PreCompileHook: cfg.Hooks.PreCompile,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}, nil
}

// mapPipelineError converts a pipeline error into the reserved ExitError.
// Unreserved errors propagate unchanged and exit with a generic status.
func mapPipelineError(err error) error {
	if err == nil {
		return nil
	}

	code, reserved := launch.ExitCodeFor(err)
	if !reserved {
		return err
	}

	// Compilation diagnostics already went to stderr through the
	// toolchain's own channel; don't add a second message for those.
	if !errors.Is(err, compile.ErrCompileFailed) {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	}
	return &ExitError{Code: code}
}
