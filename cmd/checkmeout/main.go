package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhle/check-me-out/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, &cli.Config{})
	stop()
	os.Exit(code)
}
