// Command kitemc runs a legacy protocol version 14 voxel server: it loads
// (or creates) a TOML config, starts the tick loop, and drives an admin
// console until "stop" is entered (spec.md §2's Server component, SPEC_FULL
// §2 ADD Config/CLI and Console).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kitemc/server/server"
	"github.com/kitemc/server/server/console"
)

func main() {
	configPath := flag.String("config", "kitemc.toml", "path to the server's TOML config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Error("loading config", "err", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("starting server", "err", err)
		os.Exit(1)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx)
		close(done)
	}()

	console.New(srv, log).Run(ctx)
	<-done
}
