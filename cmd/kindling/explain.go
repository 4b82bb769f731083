// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kindling-cli/internal/issue"
	"kindling-cli/pkg/types"
)

// explainCmd documents the reserved exit codes.
var explainCmd = &cobra.Command{
	Use:   "explain [code]",
	Short: "Explain the launcher's reserved exit codes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(TitleStyle.Render("Reserved exit codes"))
			for _, i := range issue.All() {
				fmt.Printf("  %s  %s\n", ValueStyle.Render(i.Code().String()), i.Title())
			}
			fmt.Println(SubtitleStyle.Render("\nUse 'kindling explain <code>' for details."))
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not an exit code: %q", args[0])
		}

		i, ok := issue.ForExitCode(types.ExitCode(n))
		if !ok {
			return fmt.Errorf("exit code %d has no reserved meaning", n)
		}

		rendered, err := i.Render()
		if err != nil {
			return fmt.Errorf("failed to render explanation: %w", err)
		}
		fmt.Print(rendered)
		return nil
	},
}
