package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"sortery/internal/presentation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			presentation.NewPrinter(os.Stderr, false).PrintError(err)
		}
		os.Exit(1)
	}
}
