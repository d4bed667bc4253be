package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		EventsReceivedTotal,
		EventFailuresTotal,
		EventHandlingDuration,
		RealtimeConnected,
		SlackCallsTotal,
		RuleMatchesTotal,
	}

	for _, collector := range collectors {
		desc := make(chan *prometheus.Desc, 1)
		collector.Describe(desc)
		close(desc)

		require.NotNil(t, <-desc, "metric should have a valid descriptor")
	}
}

func TestRecordSlackCall(t *testing.T) {
	okBefore := testutil.ToFloat64(SlackCallsTotal.WithLabelValues("add_star", "ok"))
	errBefore := testutil.ToFloat64(SlackCallsTotal.WithLabelValues("add_star", "error"))

	RecordSlackCall("add_star", nil)
	RecordSlackCall("add_star", nil)
	RecordSlackCall("add_star", errors.New("not_allowed"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(SlackCallsTotal.WithLabelValues("add_star", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(SlackCallsTotal.WithLabelValues("add_star", "error")))
}

func TestRealtimeConnectedGauge(t *testing.T) {
	RealtimeConnected.Set(1)
	assert.Equal(t, float64(1), testutil.ToFloat64(RealtimeConnected))

	RealtimeConnected.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(RealtimeConnected))
}
