// Package main provides a CLI for simulating NFL playoff overtime strategies.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/otsim/internal/config"

	otsimcmd "github.com/KirkDiggler/otsim/internal/cmd/otsim"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("Error: %v", err)
	}

	cfg, err := otsimcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitBadUsage, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otsimcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.ExitCodef(otsimcmd.ExitCode(err), "Error: %v", err)
	}
}
