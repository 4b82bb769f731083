// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kindling-cli/internal/launch"
)

// cleanCmd removes the compiled-artifacts directory. The pipeline never
// invalidates artifacts on its own; stale output from a previous source
// tree stays on disk until this command removes it.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the compiled-artifacts directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := launchOptions()
		if err != nil {
			return err
		}

		removed, err := launch.NewLauncher().Clean(opts)
		if err != nil {
			return mapPipelineError(err)
		}

		fmt.Println(SuccessStyle.Render("Removed ") + ValueStyle.Render(removed.String()))
		return nil
	},
}
