// Package server wires configuration and dependencies for the API server
// command.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hauswerk/dokuhilfe/internal/platform/config"
	"github.com/hauswerk/dokuhilfe/internal/platform/otel"
	"github.com/hauswerk/dokuhilfe/internal/seed"
	"github.com/hauswerk/dokuhilfe/internal/services/api"
	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr string
	DBPath   string
}

type envConfig struct {
	HTTPAddr string `env:"DOKUHILFE_HTTP_ADDR" envDefault:":8080"`
	DBPath   string `env:"DOKUHILFE_DB_PATH" envDefault:"dokuhilfe.db"`
}

// ParseConfig reads environment defaults and parses flags over them.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var fromEnv envConfig
	if err := config.ParseEnvWith(&fromEnv, environ); err != nil {
		return Config{}, err
	}
	cfg := Config{
		HTTPAddr: fromEnv.HTTPAddr,
		DBPath:   fromEnv.DBPath,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the API server until context cancellation. Stores without
// behavior categories get the default set installed first.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "dokuhilfe-api")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	if err := seed.ApplyCategories(ctx, store); err != nil {
		return fmt.Errorf("seed default categories: %w", err)
	}

	server := api.NewServer(api.Config{HTTPAddr: cfg.HTTPAddr}, store)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve api: %w", err)
	}
	return nil
}
