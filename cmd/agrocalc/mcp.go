package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Exposes the calculators as MCP tools (list_modules, describe_module,
compute, report) and the catalog as the agrocalc://catalog resource.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		server := mcp.NewServer(engine, agrocalc.Version, mcp.WithLogger(logger))

		if cfg.MCP.Transport == "sse" {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err := server.ServeSSE(ctx, cfg.MCP.Port)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return server.ServeStdio()
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8081, "SSE port")
	_ = v.BindPFlag("mcp.transport", mcpCmd.Flags().Lookup("transport"))
	_ = v.BindPFlag("mcp.port", mcpCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(mcpCmd)
}
