package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/poller"
	"github.com/piresc/saferoute/services/location"
	"github.com/piresc/saferoute/services/sos"
	"github.com/piresc/saferoute/services/tracking"
)

// DispatcherView implements tracking.DispatcherView
type DispatcherView struct {
	sosUC   sos.SOSUC
	locGW   location.LocationGW
	mirrors []tracking.Mirror
	cfg     models.RefreshConfig
	metrics *metrics.Collector

	group *poller.Group

	// actions tracks refreshes started by Acknowledge and Resolve; Close
	// waits for them
	actions sync.WaitGroup

	// alertsGen orders alert fetches so an older response issued by a
	// loop tick never overwrites one issued after an acknowledge
	alertsGen     atomic.Int64
	appliedAlerts int64

	mu        sync.RWMutex
	closed    bool
	alerts    []models.SOSAlert
	board     []models.DriverLocationSample
	updatedAt time.Time
}

// NewDispatcherView creates a dispatcher view publishing to mirrors
func NewDispatcherView(
	sosUC sos.SOSUC,
	locGW location.LocationGW,
	mirrors []tracking.Mirror,
	cfg models.RefreshConfig,
	collector *metrics.Collector,
) *DispatcherView {
	return &DispatcherView{
		sosUC:   sosUC,
		locGW:   locGW,
		mirrors: mirrors,
		cfg:     cfg,
		metrics: collector,
	}
}

// Open starts the alert and fleet board loops
func (v *DispatcherView) Open(ctx context.Context) error {
	v.bind(ctx)
	v.group.Start(poller.Task{
		Name:      tracking.TaskSOSAlerts,
		Interval:  v.cfg.AlertsInterval,
		Immediate: true,
		Run:       v.refreshAlerts,
	})
	v.group.Start(poller.Task{
		Name:      tracking.TaskFleetBoard,
		Interval:  v.cfg.FleetBoardInterval,
		Immediate: true,
		Run:       v.refreshBoard,
	})

	logger.Info("Dispatcher view opened", logger.Int("mirrors", len(v.mirrors)))
	return nil
}

func (v *DispatcherView) bind(ctx context.Context) {
	v.group = poller.NewGroup(ctx, v.metrics)
}

// Close stops both loops. Actions finishing afterwards no longer refresh
// the view or the mirrors.
func (v *DispatcherView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.actions.Wait()

	if v.group != nil {
		v.group.StopAll()
	}
	logger.Info("Dispatcher view closed")
}

func (v *DispatcherView) refreshAlerts(ctx context.Context) error {
	gen := v.alertsGen.Add(1)

	alerts, err := v.sosUC.ActiveAlerts(ctx)
	if err != nil {
		return err
	}
	if !poller.Alive(ctx) {
		return nil
	}

	v.mu.Lock()
	if gen < v.appliedAlerts || v.closed {
		v.mu.Unlock()
		return nil
	}
	v.appliedAlerts = gen
	previous := len(v.alerts)
	v.alerts = alerts
	v.updatedAt = time.Now()
	v.metrics.SetDispatcherCounts(len(v.alerts), len(v.board))
	v.mu.Unlock()

	if len(alerts) > previous {
		logger.Warn("New SOS alerts",
			logger.Int("active", len(alerts)),
			logger.Int("previous", previous))
	}

	for _, m := range v.mirrors {
		err := m.PublishAlerts(ctx, alerts)
		v.metrics.MirrorPublished(m.Name(), err)
		if err != nil {
			logger.Warn("Failed to mirror alerts", logger.String("mirror", m.Name()), logger.Err(err))
		}
	}
	return nil
}

func (v *DispatcherView) refreshBoard(ctx context.Context) error {
	board, err := v.locGW.AllLocations(ctx)
	if err != nil {
		return err
	}
	if !poller.Alive(ctx) {
		return nil
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.board = board
	v.updatedAt = time.Now()
	v.metrics.SetDispatcherCounts(len(v.alerts), len(v.board))
	v.mu.Unlock()

	for _, m := range v.mirrors {
		err := m.PublishBoard(ctx, board)
		v.metrics.MirrorPublished(m.Name(), err)
		if err != nil {
			logger.Warn("Failed to mirror fleet board", logger.String("mirror", m.Name()), logger.Err(err))
		}
	}
	return nil
}

// Acknowledge passes through and refreshes the alert list at once
func (v *DispatcherView) Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error) {
	alert, err := v.sosUC.Acknowledge(ctx, alertID)
	if err != nil {
		return nil, err
	}
	v.refreshNow(ctx)
	return alert, nil
}

// Resolve passes through and refreshes the alert list at once
func (v *DispatcherView) Resolve(ctx context.Context, alertID int64, notes string) (*models.SOSAlert, error) {
	alert, err := v.sosUC.Resolve(ctx, alertID, notes)
	if err != nil {
		return nil, err
	}
	v.refreshNow(ctx)
	return alert, nil
}

func (v *DispatcherView) refreshNow(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		logger.Debug("Dispatcher view closed, skipping refresh")
		return
	}
	v.actions.Add(1)
	v.mu.Unlock()
	defer v.actions.Done()

	if err := v.refreshAlerts(ctx); err != nil {
		logger.Warn("Failed to refresh alerts after action", logger.Err(err))
	}
}

// Snapshot returns a copy of the view state
func (v *DispatcherView) Snapshot() tracking.DispatcherSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return tracking.DispatcherSnapshot{
		Alerts:    append([]models.SOSAlert(nil), v.alerts...),
		Board:     append([]models.DriverLocationSample(nil), v.board...),
		UpdatedAt: v.updatedAt,
	}
}

// Tasks returns the running loops
func (v *DispatcherView) Tasks() []poller.Stats {
	if v.group == nil {
		return nil
	}
	return v.group.Stats()
}

var _ tracking.DispatcherView = (*DispatcherView)(nil)
