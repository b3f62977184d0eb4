package main

import (
	"fmt"
	"log/slog"
	"os"

	"scrap/internal/app"
	"scrap/internal/config"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrap failed: %v\n", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(log)

	application := app.New(cfg, os.Args[1:], log)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "scrap failed: %v\n", err)
		os.Exit(1)
	}
}
