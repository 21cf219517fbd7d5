// Command life-text runs the simulation without a window and prints each
// generation as rows of glyphs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"toruslife/internal/app"
	"toruslife/internal/ctxlog"
	"toruslife/pkg/universe"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it with arguments.
func run(outW, errW io.Writer, args []string) error {
	fs := flag.NewFlagSet("life-text", flag.ContinueOnError)
	fs.SetOutput(errW)

	cfg := app.NewConfig()
	cfg.Bind(fs)
	generations := fs.Int("n", 10, "generations to run")
	every := fs.Bool("every", false, "print every generation instead of only the last")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Load(fs); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", *generations)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	session, err := app.NewSession(ctx, cfg)
	if err != nil {
		return err
	}
	u := session.Universe()

	if *every {
		printGeneration(outW, u)
	}
	for i := 0; i < *generations; i++ {
		session.Advance()
		if *every {
			printGeneration(outW, u)
		}
	}
	if !*every {
		printGeneration(outW, u)
	}

	logger.Info("Run complete", "generation", u.Generation(), "population", u.Population())
	return session.Save(ctx)
}

func printGeneration(w io.Writer, u *universe.Universe) {
	fmt.Fprintf(w, "generation %d population %d\n", u.Generation(), u.Population())
	fmt.Fprint(w, u.String())
}
