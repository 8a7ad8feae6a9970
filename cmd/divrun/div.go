// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/divrun/internal/calc"
	"github.com/kraklabs/divrun/internal/errors"
	"github.com/kraklabs/divrun/internal/metrics"
	"github.com/kraklabs/divrun/internal/output"
	"github.com/kraklabs/divrun/internal/ui"
)

// DivResult represents a division result for JSON/YAML output.
type DivResult struct {
	Dividend float64 `json:"dividend" yaml:"dividend"`
	Divisor  float64 `json:"divisor" yaml:"divisor"`
	Quotient float64 `json:"quotient" yaml:"quotient"`
}

// runDiv executes the 'div' CLI command, running the division operation once.
//
// A zero divisor fails the same way the fixture driver does: the error
// is not recovered and the process exits with the division exit code.
//
// Flags:
//   - --json: Output result as JSON (default: false)
//   - --yaml: Output result as YAML (default: false)
//
// Examples:
//
//	divrun div 7 2           Print Result: 3.5
//	divrun div 7 2 --json    Output as JSON
//	divrun div 10 0          Fail with Division by zero!
func runDiv(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("div", flag.ExitOnError)
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")
	yamlOutput := fs.Bool("yaml", false, "Output as YAML")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: divrun div <dividend> <divisor> [options]

Divides two numbers using float64 semantics (7 / 2 = 3.5).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	dividend, divisor, err := parseOperands(fs.Args())
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	metrics.IncDivision()
	q, err := calc.Divide(dividend, divisor)
	if err != nil {
		metrics.IncFailure()
		errors.FatalError(errors.NewDivisionError(
			"Division failed",
			err.Error(),
			"Use a non-zero divisor",
			err,
		), *jsonOutput)
	}
	slog.Debug("div.ok", "dividend", dividend, "divisor", divisor, "quotient", q)

	result := &DivResult{Dividend: dividend, Divisor: divisor, Quotient: q}
	switch {
	case *jsonOutput:
		if encErr := output.JSON(result); encErr != nil {
			errors.FatalError(errors.NewInternalError(
				"Cannot encode result",
				"JSON encoding of the division result failed",
				"This is a bug. Please report it at github.com/kraklabs/divrun/issues",
				encErr,
			), true)
		}
	case *yamlOutput:
		if encErr := output.YAML(result); encErr != nil {
			errors.FatalError(errors.NewInternalError(
				"Cannot encode result",
				"YAML encoding of the division result failed",
				"This is a bug. Please report it at github.com/kraklabs/divrun/issues",
				encErr,
			), false)
		}
	default:
		fmt.Printf("%s %s\n", ui.Label("Result:"), calc.FormatQuotient(q))
	}
}

// parseOperands parses exactly two numeric arguments.
func parseOperands(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, errors.NewInputError(
			"Wrong number of arguments",
			fmt.Sprintf("div expects <dividend> <divisor>, got %d argument(s)", len(args)),
			"Run: divrun div 10 2",
		)
	}

	dividend, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, errors.NewInputError(
			"Invalid dividend",
			fmt.Sprintf("%q is not a number", args[0]),
			"Pass numeric operands, e.g. divrun div 10 2",
		)
	}

	divisor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, errors.NewInputError(
			"Invalid divisor",
			fmt.Sprintf("%q is not a number", args[1]),
			"Pass numeric operands, e.g. divrun div 10 2",
		)
	}

	return dividend, divisor, nil
}
