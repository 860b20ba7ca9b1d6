package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New("catalogo")

	m.LoginAttempt(metrics.LoginSuccess)
	m.LoginAttempt(metrics.LoginFailure)
	m.LoginAttempt(metrics.LoginFailure)
	m.AccessDenied(metrics.DenyTenantMismatch)
	m.CatalogOp("product", "create", nil)
	m.CatalogOp("product", "create", errors.New("boom"))
	m.ObserveHTTP("GET", "/api/:tenantSlug/products", 200, 15*time.Millisecond)

	expected := `
# HELP catalogo_auth_login_attempts_total Intentos de login por resultado
# TYPE catalogo_auth_login_attempts_total counter
catalogo_auth_login_attempts_total{outcome="invalid_credentials"} 2
catalogo_auth_login_attempts_total{outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "catalogo_auth_login_attempts_total"))

	for name, want := range map[string]int{
		"catalogo_catalog_operations_total": 2,
		"catalogo_auth_access_denied_total": 1,
		"catalogo_http_requests_total":      1,
	} {
		got, err := testutil.GatherAndCount(m.Registry(), name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestMetrics_NilSeguro(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.LoginAttempt(metrics.LoginSuccess)
		m.AccessDenied(metrics.DenyUnauthenticated)
		m.CatalogOp("variant", "delete", nil)
		m.SessionOp("get", time.Now(), nil)
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New("catalogo")
	m.SessionOp("save", time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalogo_session_store_operation_duration_seconds")
}
