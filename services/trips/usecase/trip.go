package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	appctx "github.com/piresc/saferoute/internal/pkg/context"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
	"github.com/piresc/saferoute/services/trips"
)

const defaultPushTimeout = 10 * time.Second

// TripUC implements trips.TripUC. Transitions are serialized.
type TripUC struct {
	tripGW   trips.TripGW
	locGW    location.LocationGW
	provider location.LocationProvider
	metrics  *metrics.Collector

	pushTimeout time.Duration

	transitionMu sync.Mutex

	stateMu sync.RWMutex
	trips   []models.Trip

	trackMu  sync.Mutex
	tracking *tracking
}

// tracking is one stream session bound to a trip. Pushes run off the
// platform goroutine, one at a time, and are cancelled on stop.
type tracking struct {
	tripID   int64
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight atomic.Bool
	pushes   sync.WaitGroup
}

// NewTripUC creates a new trip state machine
func NewTripUC(
	tripGW trips.TripGW,
	locGW location.LocationGW,
	provider location.LocationProvider,
	collector *metrics.Collector,
	pushTimeout time.Duration,
) *TripUC {
	if pushTimeout <= 0 {
		pushTimeout = defaultPushTimeout
	}
	return &TripUC{
		tripGW:      tripGW,
		locGW:       locGW,
		provider:    provider,
		metrics:     collector,
		pushTimeout: pushTimeout,
	}
}

// Transition moves trip to target. Local state and side effects change only
// after the backend acknowledged; on any failure the caller's trip is
// untouched.
func (uc *TripUC) Transition(ctx context.Context, trip models.Trip, target models.TripStatus) (*models.Trip, error) {
	uc.transitionMu.Lock()
	defer uc.transitionMu.Unlock()

	updated, err := uc.transition(ctx, trip, target)
	uc.metrics.TransitionObserved(string(target), err)
	return updated, err
}

func (uc *TripUC) transition(ctx context.Context, trip models.Trip, target models.TripStatus) (*models.Trip, error) {
	if !trip.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: trip %d cannot go from %s to %s",
			apperrors.ErrPreconditionFailed, trip.ID, trip.Status, target)
	}

	req := models.TripStatusUpdate{Status: target}
	if target == models.TripStatusStarted {
		pos := uc.provider.LastFix()
		if pos == nil {
			pos = uc.provider.CurrentFix(ctx)
		}
		if pos == nil {
			logger.Warn("Refusing to start trip without a fix", logger.Int64("trip_id", trip.ID))
			return nil, apperrors.ErrFixUnavailable
		}
		lat, lng := pos.Latitude, pos.Longitude
		req.Lat, req.Lng = &lat, &lng
	}

	updated, err := uc.tripGW.UpdateStatus(ctx, trip.ID, req)
	if err != nil {
		logger.Warn("Trip transition rejected",
			logger.Int64("trip_id", trip.ID),
			logger.String("from", string(trip.Status)),
			logger.String("to", string(target)),
			logger.Err(err))
		return nil, fmt.Errorf("transition trip %d to %s: %w", trip.ID, target, err)
	}
	if updated == nil {
		confirmed := trip
		confirmed.Status = target
		updated = &confirmed
	}

	logger.Info("Trip transitioned",
		logger.Int64("trip_id", trip.ID),
		logger.String("from", string(trip.Status)),
		logger.String("to", string(updated.Status)))

	uc.provider.Pulse(ctx, location.IntensityMedium)

	switch {
	case target.Streams():
		uc.StartTracking(ctx, updated.ID)
	case target.IsTerminal():
		uc.StopTracking()
	}

	uc.storeTrip(*updated)
	if _, err := uc.LoadMyTrips(ctx); err != nil {
		logger.Warn("Failed to refresh trips after transition", logger.Err(err))
	}

	return updated, nil
}

// StartTracking opens the stream for tripID, replacing any active one. Each
// sample is pushed to the backend; push failures are logged only.
func (uc *TripUC) StartTracking(ctx context.Context, tripID int64) bool {
	uc.trackMu.Lock()
	defer uc.trackMu.Unlock()

	uc.stopTrackingLocked()

	pushCtx, cancel := context.WithCancel(appctx.WithTask(context.Background(), "location-push"))
	t := &tracking{tripID: tripID, ctx: pushCtx, cancel: cancel}

	ok := uc.provider.StartStream(
		func(p models.Position) { uc.push(t, p) },
		func(err error) {
			logger.Warn("Location stream error", logger.Int64("trip_id", tripID), logger.Err(err))
		},
	)
	if !ok {
		cancel()
		logger.Warn("Location tracking not started", logger.Int64("trip_id", tripID))
		return false
	}

	uc.tracking = t
	uc.provider.Pulse(ctx, location.IntensityLight)
	return true
}

// StopTracking closes the stream and cancels in-flight pushes
func (uc *TripUC) StopTracking() {
	uc.trackMu.Lock()
	defer uc.trackMu.Unlock()
	uc.stopTrackingLocked()
}

func (uc *TripUC) stopTrackingLocked() {
	uc.provider.StopStream()
	if uc.tracking == nil {
		return
	}
	uc.tracking.cancel()
	uc.tracking.pushes.Wait()
	uc.tracking = nil
}

// push sends one sample. A sample arriving while the previous push is still
// in flight is dropped, the next one supersedes it anyway.
func (uc *TripUC) push(t *tracking, p models.Position) {
	if t.ctx.Err() != nil {
		return
	}
	if !t.inFlight.CompareAndSwap(false, true) {
		logger.Debug("Dropping sample, previous push in flight", logger.Int64("trip_id", t.tripID))
		return
	}

	t.pushes.Add(1)
	go func() {
		defer t.pushes.Done()
		defer t.inFlight.Store(false)

		ctx, cancel := context.WithTimeout(appctx.WithRequestID(t.ctx, ""), uc.pushTimeout)
		defer cancel()

		tripID := t.tripID
		_, err := uc.locGW.PushLocation(ctx, models.NewLocationUpdate(p, &tripID))
		if t.ctx.Err() != nil {
			return
		}
		uc.metrics.LocationPushed(err)
		if err != nil {
			logger.Warn("Failed to send location",
				logger.Int64("trip_id", tripID),
				logger.Err(err))
		}
	}()
}

// LoadMyTrips refreshes the driver's trip list
func (uc *TripUC) LoadMyTrips(ctx context.Context) ([]models.Trip, error) {
	list, err := uc.tripGW.MyTrips(ctx)
	if err != nil {
		return nil, err
	}

	uc.stateMu.Lock()
	uc.trips = append([]models.Trip(nil), list...)
	uc.stateMu.Unlock()

	return append([]models.Trip(nil), list...), nil
}

// RefreshTrip reloads tripID so transitions start from the backend's status
func (uc *TripUC) RefreshTrip(ctx context.Context, tripID int64) (*models.Trip, error) {
	trip, err := uc.tripGW.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	uc.storeTrip(*trip)
	return trip, nil
}

func (uc *TripUC) storeTrip(trip models.Trip) {
	uc.stateMu.Lock()
	defer uc.stateMu.Unlock()
	for i := range uc.trips {
		if uc.trips[i].ID == trip.ID {
			uc.trips[i] = trip
			return
		}
	}
	uc.trips = append(uc.trips, trip)
}

// Trips returns a copy of the last loaded trip list
func (uc *TripUC) Trips() []models.Trip {
	uc.stateMu.RLock()
	defer uc.stateMu.RUnlock()
	return append([]models.Trip(nil), uc.trips...)
}

// ActiveTrip returns the first scheduled or running trip
func (uc *TripUC) ActiveTrip() *models.Trip {
	uc.stateMu.RLock()
	defer uc.stateMu.RUnlock()
	return models.ActiveTrip(uc.trips)
}

// CreateTrip schedules a trip for route. The vehicle is the route's own or
// the driver's assigned one; both a driver and a vehicle are required.
func (uc *TripUC) CreateTrip(ctx context.Context, route models.Route) (*models.Trip, error) {
	if route.DriverID == nil {
		return nil, fmt.Errorf("%w: route %d has no assigned driver", apperrors.ErrPreconditionFailed, route.ID)
	}

	vehicleID := route.VehicleID
	if vehicleID == nil {
		driver, err := uc.tripGW.GetDriver(ctx, *route.DriverID)
		if err != nil {
			return nil, err
		}
		if driver.AssignedVehicle != nil {
			id := driver.AssignedVehicle.ID
			vehicleID = &id
		}
	}
	if vehicleID == nil {
		return nil, fmt.Errorf("%w: route %d has no vehicle and driver %d has none assigned",
			apperrors.ErrPreconditionFailed, route.ID, *route.DriverID)
	}

	now := models.Now()
	trip, err := uc.tripGW.CreateTrip(ctx, models.TripCreate{
		RouteID:       route.ID,
		DriverID:      *route.DriverID,
		VehicleID:     *vehicleID,
		Status:        models.TripStatusScheduled,
		ScheduledTime: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("create trip for route %d: %w", route.ID, err)
	}

	logger.Info("Trip scheduled",
		logger.Int64("trip_id", trip.ID),
		logger.Int64("route_id", route.ID))
	return trip, nil
}

var _ trips.TripUC = (*TripUC)(nil)
