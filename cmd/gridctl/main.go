// Package main provides gridctl, the command-line editor for the launcher layout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ytget/launchgrid/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewCLI(version, os.Stdout)
	if err := app.Run(ctx, os.Args); err != nil {
		exitErr := &cli.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Error())
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return cli.ExitUsageError
	}
	return cli.ExitSuccess
}
