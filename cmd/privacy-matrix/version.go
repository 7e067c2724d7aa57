// Version command for the privacy-matrix CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the release version printed by the version command.
const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the privacy-matrix version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "privacy-matrix v%s\n", version)
			return nil
		},
	}
}
