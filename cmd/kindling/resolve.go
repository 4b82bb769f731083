// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kindling-cli/internal/launch"
)

// resolveCmd runs the location stage only and shows the resulting layout.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the resolved anchor layout without compiling",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := launchOptions()
		if err != nil {
			return err
		}

		loc, err := launch.NewLauncher().Resolve(opts)
		if err != nil {
			return mapPipelineError(err)
		}

		fmt.Println(TitleStyle.Render("Anchor layout"))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("form:   "), loc.Form)
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("anchor: "), ValueStyle.Render(loc.Dir.String()))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("src:    "), ValueStyle.Render(loc.SrcDir().String()))
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("classes:"), ValueStyle.Render(loc.ClassesDir().String()))
		return nil
	},
}
