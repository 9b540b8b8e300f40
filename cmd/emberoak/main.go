// Command emberoak serves the Ember & Oak marketing site.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/emberandoak/website/internal/config"
	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/content/imageurl"
	"github.com/emberandoak/website/internal/content/sqlitestore"
	"github.com/emberandoak/website/internal/metrics"
	"github.com/emberandoak/website/internal/schema"
	"github.com/emberandoak/website/internal/seed"
	"github.com/emberandoak/website/internal/server/handlers"
	"github.com/emberandoak/website/internal/server/httpserver"
	"github.com/emberandoak/website/internal/templates"
)

const shutdownGrace = 15 * time.Second

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"emberoak.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Serve struct {
		Addr string `short:"a" help:"Listen address (overrides config)"`
	} `cmd:"" help:"Serve the site"`

	Seed struct {
		Local bool `help:"Seed the local SQLite store instead of the remote dataset"`
	} `cmd:"" help:"Load the editorial dataset into the content store"`

	Schema struct {
		Output string `short:"o" help:"Write the schema export to a file instead of stdout"`
	} `cmd:"" help:"Export the content schema for the studio project"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write a starter configuration file"`
}

func main() {
	kctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var err error
	switch kctx.Command() {
	case "serve":
		err = runServe(logger)
	case "seed":
		err = runSeed(logger)
	case "schema":
		err = runSchema()
	case "init":
		err = runInit(logger)
	}
	if err != nil {
		logger.Error("Command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

func runServe(logger *slog.Logger) error {
	cfg, err := config.LoadOrDefault(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.Serve.Addr != "" {
		cfg.Server.Addr = CLI.Serve.Addr
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}
	defer renderer.Close()

	rec := metrics.NewPrometheusRecorder(nil)
	images := imageurl.New(cfg.Content.ProjectID, cfg.Content.Dataset)
	h := handlers.New(store, renderer, images, logger, rec)

	srv := httpserver.New(httpserver.Options{
		Addr:     cfg.Server.Addr,
		Handlers: h,
		Metrics:  rec,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Listen(ctx); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve() }()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}

// openStore picks the content backend: the remote API, or the local SQLite
// store in offline mode.
func openStore(cfg *config.Config, logger *slog.Logger) (content.Store, func(), error) {
	if cfg.Server.Offline {
		local, err := sqlitestore.NewStore(cfg.Server.LocalDB)
		if err != nil {
			return nil, nil, fmt.Errorf("opening local store: %w", err)
		}
		logger.Info("Serving from local store", "path", cfg.Server.LocalDB)
		return local, func() { local.Close() }, nil
	}
	client := content.NewClient(cfg.Content)
	logger.Info("Serving from remote content store",
		"project", cfg.Content.ProjectID,
		"dataset", cfg.Content.Dataset)
	return client, func() {}, nil
}

func newRenderer(cfg *config.Config, logger *slog.Logger) (*templates.Renderer, error) {
	if cfg.Server.Dev {
		return templates.NewDev("internal/templates/html", logger)
	}
	return templates.New()
}

func runSeed(logger *slog.Logger) error {
	cfg, err := config.LoadOrDefault(CLI.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if CLI.Seed.Local {
		store, err := sqlitestore.NewStore(cfg.Server.LocalDB)
		if err != nil {
			return fmt.Errorf("opening local store: %w", err)
		}
		defer store.Close()
		return seed.Run(ctx, store, logger)
	}

	if cfg.Content.Token == "" {
		return fmt.Errorf("seeding the remote dataset requires a write token (set SANITY_TOKEN)")
	}
	return seed.Run(ctx, content.NewClient(cfg.Content), logger)
}

func runSchema() error {
	if CLI.Schema.Output == "" {
		return schema.Write(os.Stdout)
	}
	f, err := os.Create(CLI.Schema.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", CLI.Schema.Output, err)
	}
	defer f.Close()
	return schema.Write(f)
}

const starterConfig = `# Ember & Oak site configuration.
content:
  project_id: ${EMBEROAK_PROJECT_ID}
  dataset: production
  api_version: "2024-01-01"
  token: ${SANITY_TOKEN}

server:
  addr: ":8080"
  # offline: true serves from the local SQLite store seeded with
  # "emberoak seed --local"; no remote project needed.
  offline: false
  local_db: emberoak.db
  dev: false

site:
  base_url: https://emberandoak.coffee
`

func runInit(logger *slog.Logger) error {
	if _, err := os.Stat(CLI.Config); err == nil && !CLI.Init.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", CLI.Config)
	}
	if err := os.WriteFile(CLI.Config, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", CLI.Config, err)
	}
	logger.Info("Configuration written", "path", CLI.Config)
	return nil
}
