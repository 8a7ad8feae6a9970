// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package main implements the divrun CLI, a deterministic failure
// fixture for error-reporting pipelines.
//
// Usage:
//
//	divrun                  Run the fixture driver (same as 'divrun demo')
//	divrun demo             Print the fixture transcript, then fail on a zero divisor
//	divrun div <a> <b>      Divide two numbers once
//	divrun --version        Display version information and exit
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/divrun/internal/metrics"
	"github.com/kraklabs/divrun/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags carries flags shared by all commands.
type GlobalFlags struct {
	JSON    bool
	NoColor bool
	Debug   bool
}

// main is the entry point for the divrun CLI.
//
// It parses global flags and dispatches to command handlers. Without a
// command it runs the fixture driver, which by contract terminates with
// a non-zero exit status.
//
// Global flags:
//   - --version: Display version information and exit
//   - --json: Output as JSON where a command supports it
//   - --no-color: Disable colored output
//   - --debug: Enable debug logging
//   - --metrics-addr: HTTP address for Prometheus metrics (default: disabled)
func main() {
	// Global flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		jsonOutput  = flag.Bool("json", false, "Output as JSON")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		metricsAddr = flag.String("metrics-addr", "", "HTTP address for Prometheus metrics (default: disabled)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `divrun - deterministic failure fixture

divrun reproduces the transcript of a known failing script: two
diagnostic lines on stdout, then an unhandled division-by-zero that
terminates the process with a non-zero exit status. Use it to exercise
error-capture tooling against a stable, repeatable failure.

Usage:
  divrun [command] [options]

Commands:
  demo          Run the fixture driver (default; exits non-zero by contract)
  div           Divide two numbers once

Global Options:
  --json          Output as JSON
  --no-color      Disable colored output
  --debug         Enable debug logging
  --metrics-addr  HTTP address for Prometheus metrics
  --version       Show version and exit

Examples:
  divrun                         Run the fixture driver
  divrun div 7 2                 Print Result: 3.5
  divrun div 7 2 --json          Output as JSON
  divrun div 10 0                Fail with Division by zero!
  divrun --metrics-addr :9090    Serve /metrics while running

For detailed command help: divrun <command> --help

`)
	}

	flag.Parse()

	initLogger(*debug)
	ui.InitColors(*noColor)

	if *showVersion {
		fmt.Printf("divrun version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	// Optional Prometheus endpoint, off by default so the fixture
	// transcript never depends on a listener.
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	globals := GlobalFlags{JSON: *jsonOutput, NoColor: *noColor, Debug: *debug}

	args := flag.Args()
	if len(args) == 0 {
		// The fixture driver is the default command.
		runDemo(nil, globals)
		return
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "demo":
		runDemo(cmdArgs, globals)
	case "div":
		runDiv(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// initLogger installs a text slog handler on stderr. Warn level by
// default so debug events never pollute the fixture transcript.
func initLogger(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// serveMetrics runs the Prometheus endpoint until the process exits.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	slog.Info("metrics.http.start", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Warn("metrics.http.error", "err", err)
	}
}
