package main

import (
	"fmt"
	"os"

	"github.com/tsujimura/ckgrid/internal/config"
	"github.com/tsujimura/ckgrid/internal/db"
	"github.com/tsujimura/ckgrid/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo := db.New(cfg.Storage.DataPath)
	defer func() { _ = repo.Close() }()

	app := ui.NewApp(repo, cfg)
	return app.Execute()
}
