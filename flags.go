package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	FlagVerbose string

	// Runtime flags
	FlagWindow        int
	FlagTracePrint    bool
	FlagPrintInterval time.Duration
)

func addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&FlagVerbose, "log-verbose", slog.LevelInfo.String(), "Log verbosity level (DEBUG, INFO, WARN, ERROR)")

	fs.IntVar(&FlagWindow, "window", 0, "Retain at most N values per series (0 = unbounded)")
	fs.BoolVar(&FlagTracePrint, "trace-print", false, "Enable periodic printing of the median table")
	fs.DurationVar(&FlagPrintInterval, "interval", 2*time.Second, "Median table print interval")
}

func validateFlags(cmd *cobra.Command) error {
	if FlagWindow < 0 {
		return fmt.Errorf("--window must be zero or positive, got %d", FlagWindow)
	}
	if !FlagTracePrint && cmd.Flags().Changed("interval") {
		return fmt.Errorf("--interval can only be used with --trace-print")
	}

	return nil
}
