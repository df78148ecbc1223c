// Package metrics expone las métricas Prometheus del servicio.
//
// Todas las métricas viven en un Registry propio (no el global) para que los
// tests puedan construir varias instancias sin colisiones de registro. Los
// métodos aceptan receptor nil: un *Metrics nil equivale a métricas deshabilitadas.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ValidationRejections *prometheus.CounterVec
	ToggleOperations     *prometheus.CounterVec
	POSInUse             prometheus.Gauge
	POSStatusRefresh     prometheus.Histogram
}

// New registra los colectores con el prefijo indicado (ej. "pos_crm").
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ValidationRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_validation_rejections_total",
			Help: "Escrituras rechazadas por reglas de consistencia",
		}, []string{"rule"}),
		ToggleOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_toggle_operations_total",
			Help: "Cambios de flags booleanos (staff, active, coverage, availability)",
		}, []string{"entity", "flag"}),
		POSInUse: f.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "_pos_in_use",
			Help: "Terminales POS asignados a un contrato vigente tras el último refresh",
		}),
		POSStatusRefresh: f.NewHistogram(prometheus.HistogramOpts{
			Name:    prefix + "_pos_status_refresh_seconds",
			Help:    "Duración del refresh masivo de estado de POS",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler devuelve el handler HTTP de exposición (/metrics).
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry interno (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTP registra una petición terminada.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// RecordValidation cuenta un rechazo por la regla indicada (serial_number, bank_name, shareholder...).
func (m *Metrics) RecordValidation(rule string) {
	if m == nil {
		return
	}
	m.ValidationRejections.WithLabelValues(rule).Inc()
}

// RecordToggle cuenta un cambio de flag.
func (m *Metrics) RecordToggle(entity, flag string) {
	if m == nil {
		return
	}
	m.ToggleOperations.WithLabelValues(entity, flag).Inc()
}

// ObserveStatusRefresh registra la duración del refresh y el número de POS en uso.
func (m *Metrics) ObserveStatusRefresh(d time.Duration, inUse int) {
	if m == nil {
		return
	}
	m.POSStatusRefresh.Observe(d.Seconds())
	m.POSInUse.Set(float64(inUse))
}
