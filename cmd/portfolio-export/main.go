// Package main writes the portfolio page to a directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/louisbranch/portfolio/internal/cmd/export"
	"github.com/louisbranch/portfolio/internal/platform/config"
)

func main() {
	cfg, err := export.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[PORTFOLIO-EXPORT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := export.Run(ctx, cfg); err != nil {
		config.Exitf("export: %v", err)
	}
}
