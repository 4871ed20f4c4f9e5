package main

import (
	httpAdapter "github.com/aretw0/ghostmap/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Exposes POST /v1/solve, POST /v1/summary, GET /healthz and GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := app.cfg.Serve.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		stack, err := newStack(cmd)
		if err != nil {
			return err
		}
		defer stack.Close()

		handler := httpAdapter.NewHandler(httpAdapter.Config{
			SolverOptions:  stack.Options,
			Metrics:        stack.Metrics.Handler(),
			Logger:         app.logger,
			RequestTimeout: app.cfg.Serve.Timeout,
		})
		return httpAdapter.ListenAndServe(cmd.Context(), addr, handler, app.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on (overrides serve.addr)")
}
