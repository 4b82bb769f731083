// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"kindling-cli/internal/config"
)

// configCmd groups configuration introspection subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect launcher configuration",
}

// configShowCmd prints the effective configuration after defaults, the
// config file, and environment overrides.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(TitleStyle.Render("Configuration"))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("program_name: "), ValueStyle.Render(cfg.ProgramName))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("source_suffix:"), ValueStyle.Render(cfg.SourceSuffix))
		fmt.Printf("  %s %v\n", SubtitleStyle.Render("strict:       "), cfg.Strict)
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("entry.module:  "), ValueStyle.Render(cfg.Entry.Module))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("entry.function:"), ValueStyle.Render(cfg.Entry.Function))
		if cfg.Hooks.PreCompile != "" {
			fmt.Printf("  %s %s\n", SubtitleStyle.Render("hooks.pre_compile:"), ValueStyle.Render(cfg.Hooks.PreCompile))
		}
		return nil
	},
}

// configPathCmd prints where the config file is searched for.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file search path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			fmt.Println(ValueStyle.Render(cfgFile))
			return nil
		}
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		fmt.Println(ValueStyle.Render(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
