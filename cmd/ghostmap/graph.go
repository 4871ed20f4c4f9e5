package main

import (
	"os"

	"github.com/aretw0/ghostmap/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the network as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) of the network, optionally highlighting a walk.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		walk, _ := cmd.Flags().GetString("walk")
		steps, _ := cmd.Flags().GetUint64("steps")

		return cli.GraphFile(cli.GraphOptions{
			Path:  args[0],
			Walk:  walk,
			Steps: steps,
			Out:   os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("walk", "", "Overlay the walk starting at this label, e.g. AAA")
	graphCmd.Flags().Uint64("steps", 1000, "Maximum steps to overlay")
}
