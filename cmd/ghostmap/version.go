package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ghostmap"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ghostmap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ghostmap version %s\n", strings.TrimSpace(ghostmap.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
