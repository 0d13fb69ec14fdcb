package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the tracker's Prometheus instruments on a private
// registry. All methods are safe on a nil *Collector.
type Collector struct {
	reg *prometheus.Registry

	Transitions    *prometheus.CounterVec // target, result
	LocationPushes *prometheus.CounterVec // result
	StreamActive   prometheus.Gauge

	PollTicks    *prometheus.CounterVec // task, result
	PollSkipped  *prometheus.CounterVec // task
	PollDuration *prometheus.HistogramVec

	SOSTriggers  *prometheus.CounterVec // result
	SequencerOps *prometheus.CounterVec // op, result

	MirrorPublishes *prometheus.CounterVec // sink, result
	BreakerOpen     *prometheus.GaugeVec   // sink

	RiderEtaMinutes prometheus.Gauge
	ActiveAlerts    prometheus.Gauge
	BoardDrivers    prometheus.Gauge
}

// NewCollector builds and registers every instrument
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_trip_transitions_total",
			Help: "Trip status transitions by target status and result.",
		}, []string{"target", "result"}),
		LocationPushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_location_pushes_total",
			Help: "Stream samples pushed to the backend by result.",
		}, []string{"result"}),
		StreamActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_location_stream_active",
			Help: "1 while a continuous location stream is open.",
		}),
		PollTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_poll_ticks_total",
			Help: "Completed polling ticks by task and result.",
		}, []string{"task", "result"}),
		PollSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_poll_skipped_total",
			Help: "Ticks skipped because the previous run was still in flight.",
		}, []string{"task"}),
		PollDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracker_poll_duration_seconds",
			Help:    "Duration of polling ticks.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"task"}),
		SOSTriggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_sos_triggers_total",
			Help: "SOS triggers by result.",
		}, []string{"result"}),
		SequencerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_route_sequencer_ops_total",
			Help: "Route sequencer operations by kind and result.",
		}, []string{"op", "result"}),
		MirrorPublishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_mirror_publishes_total",
			Help: "Fleet board mirror writes by sink and result.",
		}, []string{"sink", "result"}),
		BreakerOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tracker_mirror_breaker_open",
			Help: "1 while the circuit breaker of a mirror sink is open.",
		}, []string{"sink"}),
		RiderEtaMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_rider_eta_minutes",
			Help: "Latest live ETA for the rider view, -1 when suppressed.",
		}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_active_sos_alerts",
			Help: "Active SOS alerts seen by the dispatcher view.",
		}),
		BoardDrivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_fleet_board_drivers",
			Help: "Drivers on the latest fleet board snapshot.",
		}),
	}

	reg.MustRegister(
		c.Transitions, c.LocationPushes, c.StreamActive,
		c.PollTicks, c.PollSkipped, c.PollDuration,
		c.SOSTriggers, c.SequencerOps, c.MirrorPublishes, c.BreakerOpen,
		c.RiderEtaMinutes, c.ActiveAlerts, c.BoardDrivers,
	)

	return c
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveTick records a completed polling tick
func (c *Collector) ObserveTick(task string, err error, took time.Duration) {
	if c == nil {
		return
	}
	c.PollTicks.WithLabelValues(task, result(err)).Inc()
	c.PollDuration.WithLabelValues(task).Observe(took.Seconds())
}

// ObserveSkip records a tick skipped by the in-flight guard
func (c *Collector) ObserveSkip(task string) {
	if c == nil {
		return
	}
	c.PollSkipped.WithLabelValues(task).Inc()
}

// TransitionObserved records a trip transition attempt
func (c *Collector) TransitionObserved(target string, err error) {
	if c == nil {
		return
	}
	c.Transitions.WithLabelValues(target, result(err)).Inc()
}

// LocationPushed records a stream sample push
func (c *Collector) LocationPushed(err error) {
	if c == nil {
		return
	}
	c.LocationPushes.WithLabelValues(result(err)).Inc()
}

// SetStreaming flips the stream gauge
func (c *Collector) SetStreaming(active bool) {
	if c == nil {
		return
	}
	if active {
		c.StreamActive.Set(1)
	} else {
		c.StreamActive.Set(0)
	}
}

// SOSTriggered records an SOS attempt
func (c *Collector) SOSTriggered(err error) {
	if c == nil {
		return
	}
	c.SOSTriggers.WithLabelValues(result(err)).Inc()
}

// SequencerOp records a route sequencer operation
func (c *Collector) SequencerOp(op string, err error) {
	if c == nil {
		return
	}
	c.SequencerOps.WithLabelValues(op, result(err)).Inc()
}

// MirrorPublished records a fleet board mirror write
func (c *Collector) MirrorPublished(sink string, err error) {
	if c == nil {
		return
	}
	c.MirrorPublishes.WithLabelValues(sink, result(err)).Inc()
}

// SetBreakerOpen flips the breaker gauge of a mirror sink
func (c *Collector) SetBreakerOpen(sink string, open bool) {
	if c == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	c.BreakerOpen.WithLabelValues(sink).Set(v)
}

// SetRiderEta publishes the rider's live ETA, -1 when suppressed
func (c *Collector) SetRiderEta(minutes *int) {
	if c == nil {
		return
	}
	if minutes == nil {
		c.RiderEtaMinutes.Set(-1)
		return
	}
	c.RiderEtaMinutes.Set(float64(*minutes))
}

// SetDispatcherCounts publishes the dispatcher view sizes
func (c *Collector) SetDispatcherCounts(alerts, drivers int) {
	if c == nil {
		return
	}
	c.ActiveAlerts.Set(float64(alerts))
	c.BoardDrivers.Set(float64(drivers))
}
