// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/divrun/internal/calc"
	"github.com/kraklabs/divrun/internal/errors"
	"github.com/kraklabs/divrun/internal/metrics"
)

// Fixture operands. The transcript depends on these exact values.
const (
	demoDividend    = 10
	demoSafeDivisor = 2
	demoZeroDivisor = 0
)

// runDemo executes the 'demo' CLI command, the fixture driver.
//
// It prints the fixture transcript to stdout and then performs a
// division with a zero divisor. That failure is deliberately not
// recovered: it surfaces through FatalError with the division exit
// code. Exiting non-zero is the command's contract, not a defect.
//
// Examples:
//
//	divrun demo      Print the transcript, then fail
//	divrun           Same (demo is the default command)
func runDemo(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: divrun demo

Runs the fixture driver. Prints exactly:

  Starting Python test...
  Result: 5.0

then fails with "Division by zero!" on stderr and a non-zero exit
status. The transcript is byte-stable across runs.
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 0 {
		errors.FatalError(errors.NewInputError(
			"Unexpected arguments",
			"The demo command takes no arguments",
			"Run: divrun demo",
		), globals.JSON)
	}

	slog.Debug("demo.start", "dividend", demoDividend)

	if err := demoScript(os.Stdout); err != nil {
		errors.FatalError(errors.NewDivisionError(
			"Division failed",
			err.Error(),
			"",
			err,
		), globals.JSON)
	}
}

// demoScript writes the fixture transcript to w.
//
// The second division is the deliberate failure point. Its error is
// returned before the line labelling the second result is written, so
// that label never reaches the output.
func demoScript(w io.Writer) error {
	fmt.Fprintln(w, "Starting Python test...")

	metrics.IncDivision()
	q, err := calc.Divide(demoDividend, demoSafeDivisor)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Result: %s\n", calc.FormatQuotient(q))

	metrics.IncDivision()
	if _, err := calc.Divide(demoDividend, demoZeroDivisor); err != nil {
		metrics.IncFailure()
		return err
	}
	return nil
}
