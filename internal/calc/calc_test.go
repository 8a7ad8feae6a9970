// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		dividend float64
		divisor  float64
		want     float64
	}{
		{"integral quotient", 10, 2, 5},
		{"fractional quotient", 7, 2, 3.5},
		{"negative dividend", -9, 3, -3},
		{"fractional operands", 1.5, 0.5, 3},
		{"zero dividend", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.dividend, tt.divisor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, dividend := range []float64{10, 0, -3.5} {
		_, err := Divide(dividend, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisionByZero))
		assert.Equal(t, "Division by zero!", err.Error())
	}
}

func TestFormatQuotient(t *testing.T) {
	tests := []struct {
		name string
		q    float64
		want string
	}{
		{"integral keeps decimal", 5, "5.0"},
		{"fractional unchanged", 3.5, "3.5"},
		{"negative integral", -2, "-2.0"},
		{"zero", 0, "0.0"},
		{"repeating decimal", 1.0 / 3, "0.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuotient(tt.q))
		})
	}
}
