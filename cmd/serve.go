package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/graph"
	"github.com/moviegraph/moviegraph/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST, or GET with a query parameter)
  - GraphQL Playground at /graphql (GET without a query)
  - Health check at /healthz

Examples:
  # Start server on default port 5004
  moviegraph serve

  # Start server on a custom port
  moviegraph serve --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		return runServer()
	},
}

func runServer() error {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	schema, err := graph.NewSchema(core, logger)
	if err != nil {
		return err
	}
	srv := server.New(cfg.Server, core, schema, logger)

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting server at http://localhost:%d%s\n", cfg.Server.Port, cfg.Server.Path)
	if cfg.Server.Playground {
		fmt.Printf("GraphQL Playground: http://localhost:%d%s\n", cfg.Server.Port, cfg.Server.Path)
	}

	return srv.Run(ctx, cfg.Addr())
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 5004, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
