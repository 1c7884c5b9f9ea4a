package ui

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsujimura/ckgrid/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string
	var staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timetable over HTTP",
		Long: `Run the HTTP collaborator: static frontend assets, the current
timetable document, and the whole-document save endpoint.

Shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.config.Server.Addr
			}
			if staticDir == "" {
				staticDir = a.config.Server.StaticDir
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.repo, staticDir, server.NewLogger())
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "Static assets directory (default from config)")
	return cmd
}
