package metrics_test

import (
	"busticket/shared/metrics"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))

	return metric.GetCounter().GetValue()
}

func TestResult(t *testing.T) {
	assert.Equal(t, metrics.ResultSuccess, metrics.Result(nil))
	assert.Equal(t, metrics.ResultFailure, metrics.Result(errors.New("boom")))
}

func TestBookingsCounter(t *testing.T) {
	counter := metrics.Bookings.WithLabelValues("created")
	before := counterValue(t, counter)

	counter.Inc()

	assert.InDelta(t, before+1, counterValue(t, counter), 0.0001)
}
