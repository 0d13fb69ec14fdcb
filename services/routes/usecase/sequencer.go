package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/retry"
	"github.com/piresc/saferoute/services/routes"
)

// Sequencer implements routes.Sequencer for one route. Mutations are
// serialized; readers see the optimistic list while a reorder persists.
type Sequencer struct {
	routeID int64
	gw      routes.RouteGW
	reload  *retry.Retrier
	metrics *metrics.Collector

	opMu sync.Mutex

	mu    sync.RWMutex
	route *models.Route
	stops []models.RouteStop
}

// ReloadRetryConfig is the backoff used for authoritative reloads
func ReloadRetryConfig(maxRetries int) retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = maxRetries
	cfg.RetryableFunc = httpclient.IsRetryable
	return cfg
}

// NewSequencer creates a sequencer for routeID. A nil retrier reloads once.
func NewSequencer(routeID int64, gw routes.RouteGW, reload *retry.Retrier, collector *metrics.Collector) *Sequencer {
	if reload == nil {
		reload = retry.New(ReloadRetryConfig(0), nil)
	}
	return &Sequencer{
		routeID: routeID,
		gw:      gw,
		reload:  reload,
		metrics: collector,
	}
}

// RouteID returns the route this sequencer owns
func (s *Sequencer) RouteID() int64 {
	return s.routeID
}

// Load fetches the authoritative route
func (s *Sequencer) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.loadLocked(ctx)
	s.metrics.SequencerOp("load", err)
	return err
}

func (s *Sequencer) loadLocked(ctx context.Context) error {
	return s.reload.Execute(ctx, func(ctx context.Context) error {
		route, err := s.gw.GetRoute(ctx, s.routeID)
		if err != nil {
			return err
		}
		s.publish(route, route.Stops)
		return nil
	})
}

func (s *Sequencer) publish(route *models.Route, stops []models.RouteStop) {
	sorted := models.SortStops(stops)

	s.mu.Lock()
	defer s.mu.Unlock()
	if route != nil {
		r := *route
		r.Stops = nil
		s.route = &r
	}
	s.stops = sorted
}

// AddStops appends one stop per employee after the current maximum, in the
// given order, one backend call at a time. A failure leaves the stops
// created so far in place.
func (s *Sequencer) AddStops(ctx context.Context, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.addStopsLocked(ctx, employeeIDs)
	s.metrics.SequencerOp("add", err)
	return err
}

func (s *Sequencer) addStopsLocked(ctx context.Context, employeeIDs []int64) error {
	next := models.MaxSequence(s.Stops())

	for i, employeeID := range employeeIDs {
		next++
		if _, err := s.gw.AddStop(ctx, s.routeID, models.RouteStopCreate{
			EmployeeID:    employeeID,
			SequenceOrder: next,
		}); err != nil {
			logger.Warn("Failed to add stop, route partially updated",
				logger.Int64("route_id", s.routeID),
				logger.Int64("employee_id", employeeID),
				logger.Int("created", i),
				logger.Err(err))
			return fmt.Errorf("add stop for employee %d (%d of %d created): %w",
				employeeID, i, len(employeeIDs), err)
		}
	}

	logger.Info("Stops added",
		logger.Int64("route_id", s.routeID),
		logger.Int("count", len(employeeIDs)))

	return s.loadLocked(ctx)
}

// MoveStop swaps the stop at index with its neighbour and renumbers the
// whole list 1..N. The new order is visible at once; only stops whose
// sequence changed are persisted. On a persistence failure the route is
// reloaded, and if that fails too the previous order is restored.
func (s *Sequencer) MoveStop(ctx context.Context, index int, dir routes.Direction) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	snapshot := s.Stops()
	n := len(snapshot)
	if index < 0 || index >= n {
		return fmt.Errorf("%w: stop index %d outside 0..%d", apperrors.ErrPreconditionFailed, index, n-1)
	}

	var other int
	switch dir {
	case routes.DirectionUp:
		if index == 0 {
			return nil
		}
		other = index - 1
	case routes.DirectionDown:
		if index == n-1 {
			return nil
		}
		other = index + 1
	default:
		return fmt.Errorf("%w: unknown direction %q", apperrors.ErrPreconditionFailed, dir)
	}

	err := s.moveLocked(ctx, snapshot, index, other)
	s.metrics.SequencerOp("move", err)
	return err
}

func (s *Sequencer) moveLocked(ctx context.Context, snapshot []models.RouteStop, index, other int) error {
	previous := make(map[int64]int, len(snapshot))
	for _, stop := range snapshot {
		previous[stop.ID] = stop.SequenceOrder
	}

	reordered := append([]models.RouteStop(nil), snapshot...)
	reordered[index], reordered[other] = reordered[other], reordered[index]
	for i := range reordered {
		reordered[i].SequenceOrder = i + 1
	}
	s.publish(nil, reordered)

	for _, stop := range reordered {
		if previous[stop.ID] == stop.SequenceOrder {
			continue
		}
		_, err := s.gw.UpdateStop(ctx, s.routeID, stop.ID, models.RouteStopUpdate{SequenceOrder: stop.SequenceOrder})
		if err == nil {
			continue
		}

		logger.Warn("Failed to persist stop order, reloading route",
			logger.Int64("route_id", s.routeID),
			logger.Int64("stop_id", stop.ID),
			logger.Err(err))

		if reloadErr := s.loadLocked(ctx); reloadErr != nil {
			logger.Error("Failed to reload route, restoring previous order",
				logger.Int64("route_id", s.routeID),
				logger.Err(reloadErr))
			s.publish(nil, snapshot)
		}
		return fmt.Errorf("persist order of stop %d: %w", stop.ID, err)
	}

	return nil
}

// RemoveStop deletes a stop and reloads the route regardless of outcome.
// The backend owns renumbering after a delete.
func (s *Sequencer) RemoveStop(ctx context.Context, stopID int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.gw.DeleteStop(ctx, s.routeID, stopID)
	if err != nil {
		logger.Warn("Failed to remove stop",
			logger.Int64("route_id", s.routeID),
			logger.Int64("stop_id", stopID),
			logger.Err(err))
		err = fmt.Errorf("remove stop %d: %w", stopID, err)
	}

	if reloadErr := s.loadLocked(ctx); reloadErr != nil {
		logger.Warn("Failed to reload route after remove",
			logger.Int64("route_id", s.routeID),
			logger.Err(reloadErr))
		if err == nil {
			err = reloadErr
		}
	}

	s.metrics.SequencerOp("remove", err)
	return err
}

// Optimize delegates ordering to the backend and adopts its result wholesale
func (s *Sequencer) Optimize(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	stops, err := s.gw.Optimize(ctx, s.routeID)
	s.metrics.SequencerOp("optimize", err)
	if err != nil {
		return fmt.Errorf("optimize route %d: %w", s.routeID, err)
	}

	s.publish(nil, stops)
	logger.Info("Route optimized",
		logger.Int64("route_id", s.routeID),
		logger.Int("stops", len(stops)))
	return nil
}

// Stops returns a copy of the current stop list
func (s *Sequencer) Stops() []models.RouteStop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RouteStop(nil), s.stops...)
}

// Route returns the route header from the last load, without stops
func (s *Sequencer) Route() *models.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.route == nil {
		return nil
	}
	r := *s.route
	return &r
}

var _ routes.Sequencer = (*Sequencer)(nil)
