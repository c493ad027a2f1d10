// Command coverage prints the minimal covering radius of stations on a grid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/coverage/internal/cli"
	"github.com/katalvlaran/coverage/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(cli.CodeFailure)
	}
}

// run loads environment configuration and hands over to the CLI.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error()}
	}
	return cli.Run(ctx, args, cli.IO{In: in, Out: out, Err: errOut}, cfg)
}
