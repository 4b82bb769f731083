// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kindling-cli/internal/launch"
)

// compileCmd runs the resolve and compile stages without loading or
// invoking anything.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the anchored source tree without running it",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := launchOptions()
		if err != nil {
			return err
		}

		artifact, err := launch.NewLauncher().Compile(cmd.Context(), opts)
		if err != nil {
			return mapPipelineError(err)
		}

		fmt.Println(SuccessStyle.Render("Compiled ") + ValueStyle.Render(artifact.String()))
		return nil
	},
}
