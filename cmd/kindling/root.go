// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"kindling-cli/internal/config"
	"kindling-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// originFlag overrides the launcher origin (a file:// URL)
	originFlag string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg *config.Config

	// logger is the CLI diagnostic logger. Debug level when --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "kindling",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "kindling",
		Short: "Compile-and-run bootstrap launcher",
		Long: TitleStyle.Render("kindling") + SubtitleStyle.Render(" - compile-and-run bootstrap launcher") + `

kindling turns a directory of source files into a running program in one
step: it resolves a source tree anchored next to its own executable,
compiles it in a single batch, loads the result into this process, and
invokes the program's entry function with your arguments.

` + SubtitleStyle.Render("Layout convention:") + `
  <anchor>/<program>/src/**/*.go   sources
  <anchor>/<program>/classes/      compiled output

` + SubtitleStyle.Render("Examples:") + `
  kindling run a b c        Compile and run, passing "a b c" to the entry
  kindling resolve          Show where the launcher anchors its layout
  kindling compile          Compile without running
  kindling clean            Remove compiled output
  kindling explain 30       Explain a reserved exit code`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/kindling/config.cue)")
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "", "override the launcher origin (a file:// URL)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(explainCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and owns the exit-code mapping: it is the
// only place in the launcher that terminates the process.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment overrides.
func initRootConfig() {
	loaded, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded == nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	// Route the internal packages' slog output through the CLI logger.
	slog.SetDefault(slog.New(logger))
}

// parseOriginFlag returns the --origin override as a URL, or nil when unset.
func parseOriginFlag() (*url.URL, error) {
	if originFlag == "" {
		return nil, nil
	}
	u, err := url.Parse(originFlag)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse origin override").
			WithResource(originFlag).
			WithSuggestion("Pass a file:// URL, e.g. file:///opt/myapp").
			Wrap(err).
			BuildError()
	}
	return u, nil
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
