package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"eventize/internal/app"
	"eventize/internal/config"
)

func main() {
	configPath := flag.String("c", "", "path to config file")
	envFile := flag.String("env-file", "", "optional .env file loaded before config expansion")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("config file is required (-c)")
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatal(err)
		}
	} else {
		// Best effort: a local .env is optional.
		_ = godotenv.Load()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	a := app.New(cfg)
	if err := a.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
