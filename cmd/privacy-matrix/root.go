// Root command for the privacy-matrix CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/casks-mutters/web3-privacy-matrix/internal/report"
	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// matrixOptions holds the root command flag values.
type matrixOptions struct {
	configFile   string
	stack        string
	format       string
	includeScore bool
	sortBy       string
	descending   bool
}

// NewRootCmd creates the top-level "privacy-matrix" command with its
// flags and subcommands registered. Each call returns a fresh command
// tree with independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &matrixOptions{}

	root := &cobra.Command{
		Use:   "privacy-matrix",
		Short: "Compare conceptual Web3 privacy stacks",
		Long: `Privacy-matrix renders a comparison matrix of conceptual Web3 privacy
stacks. Stacks can be filtered by key, ranked with a weighted composite
score, sorted by any column, and printed as a table, CSV, or JSON.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML file providing option defaults (none read by default)")
	root.Flags().StringVar(&opts.stack, "stack", stackAll, "stack key to report on, or \"all\"")
	root.Flags().StringVar(&opts.format, "format", string(report.FormatTable), "output format: "+formatChoicesStr)
	root.Flags().BoolVar(&opts.includeScore, "include-score", false, "add the composite score column")
	root.Flags().StringVar(&opts.sortBy, "sort-by", "", "field to sort rows by")
	root.Flags().BoolVar(&opts.descending, "descending", false, "sort in descending order")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newKeysCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// runMatrix executes the report pipeline: resolve options, validate
// choices, read stacks, build and sort rows, render, print.
func runMatrix(cmd *cobra.Command, opts *matrixOptions) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}

	stack := resolveString(cmd, cfg, "stack", cfgKeyStack, opts.stack)
	format := resolveString(cmd, cfg, "format", cfgKeyFormat, opts.format)
	sortBy := resolveString(cmd, cfg, "sort-by", cfgKeySortBy, opts.sortBy)
	includeScore := resolveBool(cmd, cfg, "include-score", cfgKeyIncludeScore, opts.includeScore)
	descending := resolveBool(cmd, cfg, "descending", cfgKeyDescending, opts.descending)

	// Validate every enumerated choice before touching the catalog, so
	// a bad invocation produces a usage error and nothing else.
	if stack != stackAll && !isStackKey(stack) {
		return fmt.Errorf("unknown stack %q (valid: %s)", stack, stackChoicesStr)
	}
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("unknown format %q (valid: %s)", format, formatChoicesStr)
	}
	if sortBy != "" && !isSortField(sortBy) {
		return fmt.Errorf("unknown sort field %q (valid: %s)", sortBy, sortFieldsStr)
	}

	cat, err := attachCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Detach()

	var stacks []types.PrivacyStack
	if stack == stackAll {
		stacks, err = cat.All()
		if err != nil {
			sysExit("list stacks", err)
		}
	} else {
		s, err := cat.Get(stack)
		if err != nil {
			sysExit("get stack", err)
		}
		stacks = []types.PrivacyStack{s}
	}

	// Sorting by composite_score forces the score into the rows, and
	// therefore into the rendered headers, even without --include-score.
	showScore := includeScore || sortBy == types.FieldCompositeScore

	rows := report.BuildRows(stacks, showScore)
	rows = report.SortRows(rows, sortBy, descending)

	out, err := report.Render(outFormat, rows, report.Headers(showScore))
	if err != nil {
		sysExit("render report", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// resolveString returns the effective value for a string option:
// explicit flag > config file > flag default.
func resolveString(cmd *cobra.Command, cfg *configValues, flagName, cfgKey, flagVal string) string {
	if cmd.Flags().Changed(flagName) {
		return flagVal
	}
	if s, ok := cfg.getString(cfgKey); ok {
		return s
	}
	return flagVal
}

// resolveBool returns the effective value for a boolean option:
// explicit flag > config file > flag default.
func resolveBool(cmd *cobra.Command, cfg *configValues, flagName, cfgKey string, flagVal bool) bool {
	if cmd.Flags().Changed(flagName) {
		return flagVal
	}
	if b, ok := cfg.getBool(cfgKey); ok {
		return b
	}
	return flagVal
}

// sysExit prints the error to stderr and exits with exitSysError.
// Catalog and renderer failures are system faults, not user input.
func sysExit(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	os.Exit(exitSysError)
}
