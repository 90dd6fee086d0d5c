package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/campushq/placetrack/internal/client/cli"
	"github.com/campushq/placetrack/internal/client/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
