package platform

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/piresc/saferoute/internal/pkg/geo"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
)

// Simulated replays waypoints in a loop, one per interval. It has no
// permission gating and logs haptic impacts instead of vibrating.
type Simulated struct {
	waypoints []models.Coordinates
	interval  time.Duration
	now       func() time.Time

	mu   sync.Mutex
	next int
	last *models.Position
}

// NewSimulated creates a simulator. At least one waypoint is required.
func NewSimulated(waypoints []models.Coordinates, interval time.Duration) (*Simulated, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("simulator needs at least one waypoint")
	}
	for _, w := range waypoints {
		if !w.Valid() {
			return nil, fmt.Errorf("waypoint %v out of range", w)
		}
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Simulated{
		waypoints: waypoints,
		interval:  interval,
		now:       models.Now,
	}, nil
}

// NewStatic creates a simulator pinned to one position
func NewStatic(c models.Coordinates, interval time.Duration) (*Simulated, error) {
	return NewSimulated([]models.Coordinates{c}, interval)
}

// ParseWaypoints parses "lat,lng;lat,lng"
func ParseWaypoints(s string) ([]models.Coordinates, error) {
	var out []models.Coordinates
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid waypoint %q", pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q: %w", pair, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q: %w", pair, err)
		}
		c := models.Coordinates{Lat: lat, Lng: lng}
		if !c.Valid() {
			return nil, fmt.Errorf("waypoint %q out of range", pair)
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no waypoints in %q", s)
	}
	return out, nil
}

// Native is false, the simulator never asks for permission
func (s *Simulated) Native() bool { return false }

// RequestPermission always grants both precisions
func (s *Simulated) RequestPermission(context.Context) (location.PermissionState, error) {
	return location.PermissionState{Fine: true, Coarse: true}, nil
}

// CheckPermission always grants both precisions
func (s *Simulated) CheckPermission(context.Context) (location.PermissionState, error) {
	return location.PermissionState{Fine: true, Coarse: true}, nil
}

// CurrentPosition returns the cached fix when it is younger than
// opts.MaximumAge, otherwise advances to the next waypoint
func (s *Simulated) CurrentPosition(ctx context.Context, opts location.FixOptions) (*models.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.MaximumAge > 0 && s.last != nil && s.now().Sub(s.last.Timestamp) <= opts.MaximumAge {
		pos := *s.last
		return &pos, nil
	}
	pos := s.advanceLocked()
	return &pos, nil
}

// advanceLocked emits the next waypoint with heading and speed derived from
// the previous one
func (s *Simulated) advanceLocked() models.Position {
	cur := s.waypoints[s.next]
	s.next = (s.next + 1) % len(s.waypoints)

	pos := models.Position{
		Latitude:  cur.Lat,
		Longitude: cur.Lng,
		Timestamp: s.now(),
	}
	accuracy := 5.0
	pos.Accuracy = &accuracy

	if s.last != nil {
		prev := s.last.Coordinates()
		if prev != cur {
			heading := geo.BearingDeg(prev, cur)
			speed := geo.DistanceKm(prev, cur) * 1000 / s.interval.Seconds()
			pos.Heading = &heading
			pos.Speed = &speed
		} else {
			speed := 0.0
			pos.Speed = &speed
		}
	}

	s.last = &pos
	return pos
}

// Watch emits a fix immediately and then every interval until cleared
func (s *Simulated) Watch(_ location.FixOptions, onUpdate func(models.Position), onError func(error)) (location.Watch, error) {
	if onUpdate == nil {
		return nil, fmt.Errorf("watch needs an update callback")
	}
	w := &watch{quit: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			s.mu.Lock()
			pos := s.advanceLocked()
			s.mu.Unlock()
			onUpdate(pos)

			select {
			case <-w.quit:
				return
			case <-ticker.C:
			}
		}
	}()

	return w, nil
}

// Impact logs the requested haptic
func (s *Simulated) Impact(_ context.Context, intensity location.Intensity) error {
	logger.Debug("Haptic impact", logger.String("intensity", string(intensity)))
	return nil
}

type watch struct {
	once sync.Once
	quit chan struct{}
}

// Clear stops the watch goroutine without waiting for it
func (w *watch) Clear() {
	w.once.Do(func() { close(w.quit) })
}

var (
	_ location.Geolocator = (*Simulated)(nil)
	_ location.Haptics    = (*Simulated)(nil)
)
