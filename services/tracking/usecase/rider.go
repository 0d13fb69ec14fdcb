package usecase

import (
	"context"
	"sync"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	"github.com/piresc/saferoute/internal/pkg/geo"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/poller"
	"github.com/piresc/saferoute/services/location"
	"github.com/piresc/saferoute/services/session"
	"github.com/piresc/saferoute/services/tracking"
	"github.com/piresc/saferoute/services/trips"
)

// RiderView implements tracking.RiderView
type RiderView struct {
	tripGW    trips.TripGW
	locGW     location.LocationGW
	provider  location.LocationProvider
	sessionUC session.SessionUC
	estimator geo.Estimator
	cfg       models.RefreshConfig
	metrics   *metrics.Collector

	group *poller.Group

	mu       sync.RWMutex
	trip     *models.Trip
	driver   *models.DriverLocationSample
	position *models.Position
	pickup   *models.Coordinates
	liveEta  *geo.Estimate
	dashEta  *geo.Estimate
}

// NewRiderView creates a rider view
func NewRiderView(
	tripGW trips.TripGW,
	locGW location.LocationGW,
	provider location.LocationProvider,
	sessionUC session.SessionUC,
	estimator geo.Estimator,
	cfg models.RefreshConfig,
	collector *metrics.Collector,
) *RiderView {
	return &RiderView{
		tripGW:    tripGW,
		locGW:     locGW,
		provider:  provider,
		sessionUC: sessionUC,
		estimator: estimator,
		cfg:       cfg,
		metrics:   collector,
	}
}

// Open loads the pickup point and starts the trip and position loops. The
// driver-location loop follows the active trip.
func (v *RiderView) Open(ctx context.Context) error {
	profile, err := v.sessionUC.EmployeeProfile(ctx)
	if err != nil {
		logger.Warn("Rider profile unavailable, dashboard ETA disabled", logger.Err(err))
	} else if pickup := profile.Pickup(); pickup != nil {
		v.mu.Lock()
		v.pickup = pickup
		v.mu.Unlock()
	}

	v.bind(ctx)
	v.group.Start(poller.Task{
		Name:      tracking.TaskRiderTrip,
		Interval:  v.cfg.RiderTripInterval,
		Immediate: true,
		Run:       v.refreshTrip,
	})
	v.group.Start(poller.Task{
		Name:      tracking.TaskRiderPosition,
		Interval:  v.cfg.RiderPositionInterval,
		Immediate: true,
		Run:       v.refreshPosition,
	})

	logger.Info("Rider view opened")
	return nil
}

func (v *RiderView) bind(ctx context.Context) {
	v.group = poller.NewGroup(ctx, v.metrics)
}

// Close stops every loop; no tick mutates the view afterwards
func (v *RiderView) Close() {
	if v.group != nil {
		v.group.StopAll()
	}
	logger.Info("Rider view closed")
}

func tripID(t *models.Trip) int64 { return t.ID }

// refreshTrip polls the rider's active trip. The same trip id keeps the held
// value; a different one rebinds the driver loop; absence clears it.
func (v *RiderView) refreshTrip(ctx context.Context) error {
	fetched, err := v.tripGW.EmployeeActiveTrip(ctx)
	if err != nil {
		return err
	}
	if !poller.Alive(ctx) {
		return nil
	}

	v.mu.Lock()
	held := v.trip
	next := poller.Coalesce(held, fetched, tripID)
	if next == held {
		v.mu.Unlock()
		return nil
	}
	v.trip = next
	v.driver = nil
	v.recomputeLocked()
	v.mu.Unlock()

	if next == nil {
		logger.Info("Rider has no active trip")
		v.group.Stop(tracking.TaskDriverLocation)
		return nil
	}

	logger.Info("Tracking rider trip",
		logger.Int64("trip_id", next.ID),
		logger.Int64("driver_id", next.DriverID))

	driverID := next.DriverID
	v.group.Rebind(poller.Task{
		Name:      tracking.TaskDriverLocation,
		Interval:  v.cfg.DriverLocationInterval,
		Immediate: true,
		Run: func(ctx context.Context) error {
			return v.refreshDriverLocation(ctx, driverID)
		},
	})
	return nil
}

func (v *RiderView) refreshDriverLocation(ctx context.Context, driverID int64) error {
	sample, err := v.locGW.DriverLocation(ctx, driverID)
	if err != nil {
		return err
	}
	if !poller.Alive(ctx) {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.trip == nil || v.trip.DriverID != driverID {
		return nil
	}
	v.driver = sample
	v.recomputeLocked()
	return nil
}

func (v *RiderView) refreshPosition(ctx context.Context) error {
	pos := v.provider.CurrentFix(ctx)
	if pos == nil {
		return apperrors.ErrFixUnavailable
	}
	if !poller.Alive(ctx) {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.position = pos
	v.recomputeLocked()
	return nil
}

// recomputeLocked derives both ETAs from the current state
func (v *RiderView) recomputeLocked() {
	prev := v.liveEta
	v.liveEta, v.dashEta = nil, nil

	if v.driver != nil {
		driver := v.driver.Coordinates()
		if v.position != nil {
			v.liveEta = v.estimator.LiveEta(driver, v.position.Coordinates())
		}
		if v.pickup != nil {
			v.dashEta = v.estimator.DashboardEta(driver, *v.pickup)
		}
	}

	var minutes *int
	if v.liveEta != nil {
		m := v.liveEta.EtaMinutes
		minutes = &m
	}
	v.metrics.SetRiderEta(minutes)

	if !sameEta(prev, v.liveEta) {
		if v.liveEta == nil {
			logger.Info("Live ETA unavailable")
		} else {
			logger.Info("Live ETA updated",
				logger.Int("eta_minutes", v.liveEta.EtaMinutes),
				logger.Float64("distance_km", v.liveEta.DistanceKm))
		}
	}
}

func sameEta(a, b *geo.Estimate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.EtaMinutes == b.EtaMinutes
}

// Snapshot returns a copy of the view state
func (v *RiderView) Snapshot() tracking.RiderSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return tracking.RiderSnapshot{
		Trip:           clone(v.trip),
		DriverLocation: clone(v.driver),
		Position:       clone(v.position),
		Pickup:         clone(v.pickup),
		LiveEta:        clone(v.liveEta),
		DashboardEta:   clone(v.dashEta),
	}
}

// Tasks returns the running loops
func (v *RiderView) Tasks() []poller.Stats {
	if v.group == nil {
		return nil
	}
	return v.group.Stats()
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

var _ tracking.RiderView = (*RiderView)(nil)
