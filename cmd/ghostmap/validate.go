package main

import (
	"os"

	"github.com/aretw0/ghostmap/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check the network for reachability",
	Long: `Crawls the network from AAA and every ..A node and reports starts that
cannot reach a terminal node, plus nodes no start can reach.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return cli.ValidateFile(args[0], os.Stdout, asJSON)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Print the report as JSON")
}
