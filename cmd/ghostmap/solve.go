package main

import (
	"os"

	"github.com/aretw0/ghostmap/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve one puzzle file",
	Long: `Parses the file and prints the answer of each part.
Markdown output is rendered for the terminal when stdout is a TTY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		part, _ := cmd.Flags().GetInt("part")
		format, _ := cmd.Flags().GetString("format")

		stack, err := newStack(cmd)
		if err != nil {
			return err
		}
		defer stack.Close()

		return cli.SolveFile(cmd.Context(), cli.SolveOptions{
			Path:    args[0],
			Part:    part,
			Format:  format,
			Render:  term.IsTerminal(int(os.Stdout.Fd())),
			Out:     os.Stdout,
			Options: stack.Options,
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Int("part", 0, "Solve only this part (1 or 2)")
	solveCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, markdown or json")
}
