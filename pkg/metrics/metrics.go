package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados de login.
const (
	LoginSuccess = "success"
	LoginFailure = "invalid_credentials"
)

// Motivos de acceso denegado.
const (
	DenyUnauthenticated = "unauthenticated"
	DenyTenantMismatch  = "tenant_mismatch"
	DenyTenantInactive  = "tenant_inactive"
)

// Metrics agrupa los colectores de la API sobre un registro propio.
// Todos los métodos aceptan receptor nil (métricas deshabilitadas), útil en pruebas.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	loginTotal   *prometheus.CounterVec
	denialsTotal *prometheus.CounterVec
	catalogOps   *prometheus.CounterVec
	sessionOps   *prometheus.HistogramVec
}

// New crea los colectores bajo el namespace indicado y los registra junto con los de Go y proceso.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP por método, ruta y status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		loginTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Intentos de login por resultado",
		}, []string{"outcome"}),
		denialsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "access_denied_total",
			Help:      "Accesos denegados por motivo",
		}, []string{"reason"}),
		catalogOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "operations_total",
			Help:      "Operaciones de catálogo por entidad, operación y resultado",
		}, []string{"entity", "op", "result"}),
		sessionOps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "session_store",
			Name:      "operation_duration_seconds",
			Help:      "Duración de las operaciones del almacén de sesiones",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"op", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.loginTotal,
		m.denialsTotal,
		m.catalogOps,
		m.sessionOps,
	)
	return m
}

// Registry expone el registro (para pruebas con testutil).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler devuelve el handler HTTP de exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP registra una petición HTTP terminada.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// LoginAttempt cuenta un intento de login (LoginSuccess o LoginFailure).
func (m *Metrics) LoginAttempt(outcome string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(outcome).Inc()
}

// AccessDenied cuenta un acceso denegado por el guard.
func (m *Metrics) AccessDenied(reason string) {
	if m == nil {
		return
	}
	m.denialsTotal.WithLabelValues(reason).Inc()
}

// CatalogOp cuenta una operación de catálogo; err != nil se registra como "error".
func (m *Metrics) CatalogOp(entity, op string, err error) {
	if m == nil {
		return
	}
	m.catalogOps.WithLabelValues(entity, op, result(err)).Inc()
}

// SessionOp registra la duración de una operación del almacén de sesiones.
func (m *Metrics) SessionOp(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.sessionOps.WithLabelValues(op, result(err)).Observe(time.Since(start).Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
