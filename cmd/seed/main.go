// Package main installs the default documentation dataset into a database.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hauswerk/dokuhilfe/internal/platform/config"

	seedcmd "github.com/hauswerk/dokuhilfe/internal/cmd/seed"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:], config.EnvironMap())
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[SEED] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg); err != nil {
		config.Exitf("seed: %v", err)
	}
}
