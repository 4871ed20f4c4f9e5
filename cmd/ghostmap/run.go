package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/ghostmap/internal/cli"
	"github.com/aretw0/ghostmap/internal/presentation/tui"
	"github.com/aretw0/ghostmap/internal/puzzles/day08"
	"github.com/aretw0/ghostmap/pkg/registry"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Run registered puzzles against their input files",
	Long: `Loads <input-dir>/dayNN.txt for each day and prints both answers.
Runs every registered day when none is given. A failing part is reported and
the run continues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := make([]int, 0, len(args))
		for _, a := range args {
			d, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", a, err)
			}
			days = append(days, d)
		}
		part, _ := cmd.Flags().GetInt("part")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		stack, err := newStack(cmd)
		if err != nil {
			return err
		}
		defer stack.Close()

		reg := registry.NewRegistry()
		reg.Register(day08.New(stack.Options...))

		if !noBanner {
			tui.PrintBanner(os.Stdout)
		}
		h := &cli.Harness{
			Registry: reg,
			InputDir: app.cfg.InputDir,
			Printer:  tui.NewPrinter(os.Stdout),
			Logger:   app.logger,
		}
		return h.Run(cmd.Context(), days, part)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("part", 0, "Run only this part (1 or 2)")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
}
