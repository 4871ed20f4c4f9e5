package main

import (
	"log"
	"os"

	"github.com/aretw0/ghostmap/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts ghostmap as an MCP Server over stdio, exposing the tools
solve_single, solve_ghosts and network_summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := newStack(cmd)
		if err != nil {
			return err
		}
		defer stack.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		app.logger.Info("Starting ghostmap MCP Server (Stdio)")

		srv := mcp.NewServer(app.logger, stack.Options...)
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
