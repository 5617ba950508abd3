// Package seed wires configuration for the dataset seeding command.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/hauswerk/dokuhilfe/internal/platform/config"
	"github.com/hauswerk/dokuhilfe/internal/seed"
	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite"
)

// Config holds the seed command configuration.
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

// Run installs the default categories, areas and starter activity.
func Run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	if err := seed.Apply(ctx, store); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}

	categories, err := store.ListWorkBehaviorCategories(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	areas, err := store.ListActivityAreas(ctx)
	if err != nil {
		return fmt.Errorf("count areas: %w", err)
	}
	log.Printf("seeded %s: %d categories, %d areas", cfg.DBPath, len(categories), len(areas))
	return nil
}
