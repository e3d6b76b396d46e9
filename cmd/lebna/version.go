package main

import (
	"fmt"

	"github.com/philipparndt/lebna/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print only the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "lebna %s\n", version.GetFullVersion())
}
