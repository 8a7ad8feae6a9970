// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncDivision(t *testing.T) {
	divMetrics.init()
	before := testutil.ToFloat64(divMetrics.divisions)

	IncDivision()

	assert.Equal(t, before+1, testutil.ToFloat64(divMetrics.divisions))
}

func TestIncFailure(t *testing.T) {
	divMetrics.init()
	before := testutil.ToFloat64(divMetrics.failures)

	IncFailure()

	assert.Equal(t, before+1, testutil.ToFloat64(divMetrics.failures))
}

func TestHandler(t *testing.T) {
	IncDivision()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "divrun_divisions_total")
	assert.Contains(t, body, "divrun_division_failures_total")
	// Private registry: no Go runtime series should leak in.
	assert.NotContains(t, body, "go_goroutines")
}
