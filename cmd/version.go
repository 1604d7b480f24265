package cmd

import (
	"fmt"

	"github.com/repify/repify/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the Repify service`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// No configuration needed to print the version
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Repify v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
