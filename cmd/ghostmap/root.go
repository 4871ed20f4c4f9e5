package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/ghostmap/internal/cli"
	"github.com/aretw0/ghostmap/internal/config"
	"github.com/spf13/cobra"
)

// app is the state shared by every command, set up before any of them runs.
var app struct {
	cfg    config.Config
	logger *slog.Logger
	debug  bool
}

var rootCmd = &cobra.Command{
	Use:   "ghostmap",
	Short: "Ghostmap walks L/R node networks",
	Long: `Ghostmap follows a cyclic L/R instruction sequence through a node network.
It counts the steps from AAA to ZZZ, and synchronizes one walker per ..A node
until all of them stand on ..Z nodes at once.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		overrides, _ := cmd.Flags().GetStringArray("set")
		app.debug, _ = cmd.Flags().GetBool("debug")

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := cfg.Apply(overrides); err != nil {
			return err
		}
		app.cfg = cfg

		app.logger, err = cli.CreateLogger(cfg, app.debug)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	sc := cli.NewSignalContext(context.Background())
	defer sc.Cancel()

	if err := rootCmd.ExecuteContext(sc); err != nil {
		if cli.IsInterrupted(err) && sc.Signal() != nil {
			fmt.Fprintf(os.Stderr, "Interrupted (%v)\n", sc.Signal())
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newStack builds solver options from the loaded config.
func newStack(cmd *cobra.Command) (*cli.Stack, error) {
	return cli.NewStack(cmd.Context(), app.cfg, app.logger, app.debug)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file (YAML, or JSON by extension)")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a config key, e.g. --set cache.backend=redis")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
