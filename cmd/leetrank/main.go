package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"leetrank/internal/app"
	"leetrank/internal/di"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	refresh := flag.Bool("refresh", false, "ignore the cache and fetch live data")
	watch := flag.Bool("watch", false, "keep running and refresh on the configured schedule")
	flag.Parse()

	application, err := di.InitializeApp(*configPath)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, app.Options{ForceRefresh: *refresh, Watch: *watch}); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
