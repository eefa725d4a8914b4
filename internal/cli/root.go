package cli

import (
	"github.com/spf13/cobra"
)

const rootLong = `gircheck reads GObject Introspection (GIR) documents named in a file list,
drops the types you exclude, and writes either the filtered documents or flat
type, property and signal tables. Tables from separate runs can be merged into
one table keyed by GType name.

Exactly one mode flag is required:
  --passthrough    write each filtered document to the output directory
  --typeinfo       write typeinfo.csv
  --propertyinfo   write propertyinfo.csv
  --signalinfo     write signalinfo.csv
  --mergeinfo      join two or more tables into <last>-merged.csv

Defaults may come from gircheck.yaml (or --config) and GIRCHECK_* environment
variables, including those in a .env file. Flags override the config file,
which overrides the environment.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (no mode, conflicting modes, bad flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Missing input (file list entry, exclusion list, merge table)
  12 - One or more documents could not be parsed (others were written)
  13 - Output could not be written or paths conflict
  14 - Merge input is not a readable info table`

// newRootCmd builds the command tree. A fresh tree per invocation keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	flags := &checkFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "gircheck",
		Short: "Filter and tabulate GObject Introspection documents",
		Long:  rootLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags)
		},
		SilenceUsage: true,
	}

	registerCheckFlags(rootCmd, flags)
	registerCompletions(rootCmd)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
