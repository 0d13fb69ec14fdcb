package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.ObserveTick("fleet-board", nil, 10*time.Millisecond)
	c.ObserveTick("fleet-board", errors.New("boom"), time.Millisecond)
	c.ObserveSkip("fleet-board")
	c.TransitionObserved("STARTED", nil)
	c.LocationPushed(errors.New("offline"))
	c.SOSTriggered(nil)
	c.SequencerOp("move", nil)
	c.MirrorPublished("redis", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.PollTicks.WithLabelValues("fleet-board", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PollTicks.WithLabelValues("fleet-board", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PollSkipped.WithLabelValues("fleet-board")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Transitions.WithLabelValues("STARTED", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.LocationPushes.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SOSTriggers.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SequencerOps.WithLabelValues("move", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.MirrorPublishes.WithLabelValues("redis", "ok")))
}

func TestCollector_Gauges(t *testing.T) {
	c := NewCollector()

	c.SetStreaming(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StreamActive))
	c.SetStreaming(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.StreamActive))

	eta := 12
	c.SetRiderEta(&eta)
	assert.Equal(t, 12.0, testutil.ToFloat64(c.RiderEtaMinutes))
	c.SetRiderEta(nil)
	assert.Equal(t, -1.0, testutil.ToFloat64(c.RiderEtaMinutes))

	c.SetBreakerOpen("redis-mirror", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.BreakerOpen.WithLabelValues("redis-mirror")))
	c.SetBreakerOpen("redis-mirror", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.BreakerOpen.WithLabelValues("redis-mirror")))

	c.SetDispatcherCounts(2, 14)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ActiveAlerts))
	assert.Equal(t, 14.0, testutil.ToFloat64(c.BoardDrivers))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveTick("x", nil, time.Second)
		c.ObserveSkip("x")
		c.TransitionObserved("COMPLETED", nil)
		c.LocationPushed(nil)
		c.SetStreaming(true)
		c.SOSTriggered(nil)
		c.SequencerOp("add", nil)
		c.MirrorPublished("nats", nil)
		c.SetBreakerOpen("nats-mirror", true)
		c.SetRiderEta(nil)
		c.SetDispatcherCounts(0, 0)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.SetStreaming(true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "tracker_location_stream_active 1")
}
