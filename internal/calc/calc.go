// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package calc implements the division operation behind the divrun CLI.
//
// The operation uses float64 semantics throughout: integer operands
// produce fractional quotients (7 / 2 = 3.5). A zero divisor is the
// single failure mode, reported as ErrDivisionByZero.
package calc

import (
	"errors"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned when the divisor operand equals zero.
//
// The message text is part of the fixture transcript contract: consumers
// match on it, so it must stay byte-exact.
var ErrDivisionByZero = errors.New("Division by zero!")

// Divide returns dividend/divisor using float64 division.
//
// If divisor is zero, it returns ErrDivisionByZero and no quotient.
func Divide(dividend, divisor float64) (float64, error) {
	if divisor == 0 {
		return 0, ErrDivisionByZero
	}
	return dividend / divisor, nil
}

// FormatQuotient renders q in its shortest decimal form, keeping a
// trailing ".0" on integral values so 10/2 prints as "5.0" rather
// than "5".
func FormatQuotient(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	if strings.Contains(s, ".") || strings.Contains(s, "Inf") || s == "NaN" {
		return s
	}
	return s + ".0"
}
