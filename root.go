package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "medianstream [file]",
		Short: "Running median tracker for numeric streams",
		Long: `medianstream reads numeric samples line by line from a file or stdin
and maintains the running median per series. Each line is either a
bare value or "series value". With --window N only the N most recent
representative values are retained per series.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(cmd); err != nil {
				return err
			}
			if err := initLogger(); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appRun(args)
		},
	}

	addFlags(rootCmd.PersistentFlags())

	return rootCmd
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func appRun(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopper := make(chan os.Signal, 1)
	signal.Notify(stopper, os.Interrupt, syscall.SIGTERM)

	in := os.Stdin
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	tracker := NewMedianTracker(FlagWindow)
	slog.Info("Reading samples...", "input", name, "window", FlagWindow)

	var wg WG
	if FlagTracePrint {
		wg.Go(func() { tracker.StartPrinter(ctx, FlagPrintInterval) })
	}

	done := make(chan error, 1)
	wg.Go(func() { done <- readSamples(ctx, in, tracker) })

	select {
	case <-stopper:
		slog.Info("Interrupted, shutting down...")
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("reading samples failed", "err", err)
		}
	}
	cancel()
	wg.Wait()

	tracker.Print()
	return nil
}
