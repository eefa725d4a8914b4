package cli

import (
	"github.com/spf13/cobra"
)

// registerCompletions narrows shell completion for path flags to the file
// kinds each flag accepts.
func registerCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mergeinfo", completeExt("csv"))
	_ = cmd.RegisterFlagCompletionFunc("config", completeExt("yaml", "yml"))
	_ = cmd.RegisterFlagCompletionFunc("report", completeExt("yaml", "yml"))
	_ = cmd.RegisterFlagCompletionFunc("output", completeDirs)
}

func completeExt(exts ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}

func completeDirs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
