package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"task-tracker/internal/cli"
)

func main() {
	// Create store factory based on environment
	factory := NewStoreFactory(getEnvironment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(factory.CreateStore)
	if err := root.Command().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
