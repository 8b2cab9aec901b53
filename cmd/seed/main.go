// Package main loads the default project fixture into a gallery SQLite store.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/louisbranch/portfolio.gallery/internal/cmd/seed"
	"github.com/louisbranch/portfolio.gallery/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SEED] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := seedcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("seed: %v", err)
	}
}
