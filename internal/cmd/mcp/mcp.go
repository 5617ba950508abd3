// Package mcp wires configuration for the MCP stdio server command.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hauswerk/dokuhilfe/internal/platform/config"
	"github.com/hauswerk/dokuhilfe/internal/platform/otel"
	"github.com/hauswerk/dokuhilfe/internal/services/mcp/service"
	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite"
)

const serverVersion = "0.1.0"

// Config holds the MCP command configuration.
type Config struct {
	DBPath string
}

type envConfig struct {
	DBPath string `env:"DOKUHILFE_DB_PATH" envDefault:"dokuhilfe.db"`
}

// ParseConfig reads environment defaults and parses flags over them.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var fromEnv envConfig
	if err := config.ParseEnvWith(&fromEnv, environ); err != nil {
		return Config{}, err
	}
	cfg := Config{DBPath: fromEnv.DBPath}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the composer tools over stdio until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "dokuhilfe-mcp")
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

	server := service.NewServer(serverVersion, store)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}
