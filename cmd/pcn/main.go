package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dhana56/protein-contact-networks/internal/app"
)

func main() {
	// Missing .env is normal for the CLI.
	_ = godotenv.Load()
	log.SetFlags(0)
	log.SetPrefix("pcn: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
