package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

func TestMetrics_RegistraValidacionesYRefresh(t *testing.T) {
	m := metrics.New("test")

	m.RecordValidation("serial_number")
	m.RecordValidation("serial_number")
	m.RecordValidation("bank_name")
	m.ObserveStatusRefresh(10*time.Millisecond, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationRejections.WithLabelValues("serial_number")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationRejections.WithLabelValues("bank_name")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.POSInUse))
}

func TestMetrics_DosInstanciasNoColisionan(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = metrics.New("dup")
		_ = metrics.New("dup")
	})
}

func TestMetrics_ReceptorNilEsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordValidation("x")
		m.RecordToggle("pos", "is_active")
		m.ObserveHTTP("GET", "/", "200", time.Second)
		m.ObserveStatusRefresh(time.Second, 1)
	})
	assert.NotNil(t, m.Handler())
}
