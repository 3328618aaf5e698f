package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/clusterlens/clusterlens/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
