// Show command for the privacy-matrix CLI.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

func newShowCmd(opts *matrixOptions) *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Display one stack with full details",
		Long: `Show prints every attribute of one stack, including the description
that the matrix report leaves out, together with its composite score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isStackKey(key) {
				return fmt.Errorf("unknown stack %q (valid: %s)", key, strings.Join(validStackKeys, ", "))
			}

			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}

			cat, err := attachCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Detach()

			stack, err := cat.Get(key)
			if err != nil {
				sysExit("get stack", err)
			}

			if showJSON {
				return printStackJSON(cmd, stack)
			}
			printStack(cmd, stack)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	return cmd
}

// printStack writes a human-readable detail view with aligned labels.
func printStack(cmd *cobra.Command, s types.PrivacyStack) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key:                 %s\n", s.Key)
	fmt.Fprintf(out, "Name:                %s\n", s.Name)
	fmt.Fprintf(out, "Family:              %s\n", s.Family)
	fmt.Fprintf(out, "Description:         %s\n", s.Description)
	fmt.Fprintf(out, "Privacy level:       %d\n", s.PrivacyLevel)
	fmt.Fprintf(out, "Soundness focus:     %d\n", s.SoundnessFocus)
	fmt.Fprintf(out, "Performance cost:    %d\n", s.PerformanceCost)
	fmt.Fprintf(out, "Dev complexity:      %d\n", s.DevComplexity)
	fmt.Fprintf(out, "Ecosystem maturity:  %d\n", s.EcosystemMaturity)
	fmt.Fprintf(out, "Composite score:     %v\n", s.CompositeScore())
}

// printStackJSON writes the stack plus its composite score as indented
// JSON.
func printStackJSON(cmd *cobra.Command, s types.PrivacyStack) error {
	view := struct {
		types.PrivacyStack
		CompositeScore float64 `json:"composite_score"`
	}{s, s.CompositeScore()}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stack: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
