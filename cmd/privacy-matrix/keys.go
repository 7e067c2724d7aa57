// Keys command for the privacy-matrix CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(opts *matrixOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List catalog keys, one per line",
		Long:  `Keys prints every stack key in catalog declaration order, for scripting.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}

			cat, err := attachCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Detach()

			keys, err := cat.Keys()
			if err != nil {
				sysExit("list keys", err)
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}
