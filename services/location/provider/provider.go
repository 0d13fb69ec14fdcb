package provider

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
)

const (
	defaultHighAccuracyTimeout = 10 * time.Second
	defaultLowAccuracyTimeout  = 20 * time.Second
	defaultCachedFixMaxAge     = 30 * time.Second
	defaultSOSPulseGap         = 200 * time.Millisecond
	sosPulseCount              = 3
)

var errNoFix = errors.New("platform returned no position")

// Provider implements location.LocationProvider on top of an injected
// platform. At most one stream is active per provider.
type Provider struct {
	geo     location.Geolocator
	haptics location.Haptics
	cfg     models.LocationConfig
	metrics *metrics.Collector

	mu      sync.Mutex
	stream  *stream
	streams uint64

	fixMu sync.RWMutex
	last  *models.Position
}

// NewProvider creates a provider. Zero timeouts fall back to 10s/20s/30s.
func NewProvider(geo location.Geolocator, haptics location.Haptics, cfg models.LocationConfig, collector *metrics.Collector) *Provider {
	if cfg.HighAccuracyTimeout <= 0 {
		cfg.HighAccuracyTimeout = defaultHighAccuracyTimeout
	}
	if cfg.LowAccuracyTimeout <= 0 {
		cfg.LowAccuracyTimeout = defaultLowAccuracyTimeout
	}
	if cfg.CachedFixMaxAge <= 0 {
		cfg.CachedFixMaxAge = defaultCachedFixMaxAge
	}
	if cfg.SOSPulseGap <= 0 {
		cfg.SOSPulseGap = defaultSOSPulseGap
	}
	return &Provider{
		geo:     geo,
		haptics: haptics,
		cfg:     cfg,
		metrics: collector,
	}
}

// RequestPermission prompts for location access. Platforms without
// permission gating are always granted.
func (p *Provider) RequestPermission(ctx context.Context) bool {
	if !p.geo.Native() {
		return true
	}
	state, err := p.geo.RequestPermission(ctx)
	if err != nil {
		logger.Error("Error requesting location permissions", logger.Err(err))
		return false
	}
	return state.Granted()
}

// CheckPermission reports the current grant without prompting
func (p *Provider) CheckPermission(ctx context.Context) bool {
	if !p.geo.Native() {
		return true
	}
	state, err := p.geo.CheckPermission(ctx)
	if err != nil {
		logger.Error("Error checking location permissions", logger.Err(err))
		return false
	}
	return state.Granted()
}

// EnsurePermission prompts only when access has not been granted yet
func (p *Provider) EnsurePermission(ctx context.Context) bool {
	if p.CheckPermission(ctx) {
		return true
	}
	return p.RequestPermission(ctx)
}

// CurrentFix tries a fresh high accuracy fix, then a low accuracy one that
// may be served from cache
func (p *Provider) CurrentFix(ctx context.Context) *models.Position {
	pos, err := p.fix(ctx, location.FixOptions{
		HighAccuracy: true,
		Timeout:      p.cfg.HighAccuracyTimeout,
	})
	if err == nil {
		return pos
	}
	if ctx.Err() != nil {
		logger.Warn("Fix abandoned", logger.Err(ctx.Err()))
		return nil
	}

	logger.Warn("High accuracy fix failed, trying low accuracy", logger.Err(err))

	pos, err = p.fix(ctx, location.FixOptions{
		HighAccuracy: false,
		Timeout:      p.cfg.LowAccuracyTimeout,
		MaximumAge:   p.cfg.CachedFixMaxAge,
	})
	if err != nil {
		logger.Error("Error getting current position", logger.Err(err))
		return nil
	}
	return pos
}

func (p *Provider) fix(ctx context.Context, opts location.FixOptions) (*models.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	pos, err := p.geo.CurrentPosition(ctx, opts)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, errNoFix
	}
	p.remember(*pos)
	return pos, nil
}

func (p *Provider) remember(pos models.Position) {
	p.fixMu.Lock()
	defer p.fixMu.Unlock()
	p.last = &pos
}

// LastFix returns a copy of the latest known fix
func (p *Provider) LastFix() *models.Position {
	p.fixMu.RLock()
	defer p.fixMu.RUnlock()
	if p.last == nil {
		return nil
	}
	pos := *p.last
	return &pos
}

// StartStream stops any active stream, then opens a new high accuracy,
// uncached one. It reports whether the new stream was established.
func (p *Provider) StartStream(onUpdate func(models.Position), onError func(error)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.streams++
	s := &stream{
		id:       p.streams,
		onUpdate: onUpdate,
		onError:  onError,
		remember: p.remember,
		alive:    true,
	}

	w, err := p.geo.Watch(location.FixOptions{
		HighAccuracy: true,
		Timeout:      p.cfg.HighAccuracyTimeout,
	}, s.deliverUpdate, s.deliverError)
	if err != nil {
		s.stop()
		logger.Error("Error starting position watch", logger.Err(err))
		return false
	}

	s.mu.Lock()
	s.watch = w
	s.mu.Unlock()

	p.stream = s
	p.metrics.SetStreaming(true)
	logger.Info("Location stream started", logger.Int64("stream", int64(s.id)))
	return true
}

// StopStream stops the active stream. Safe when none is active.
func (p *Provider) StopStream() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Provider) stopLocked() {
	if p.stream == nil {
		return
	}
	s := p.stream
	p.stream = nil
	s.stop()
	p.metrics.SetStreaming(false)
	logger.Info("Location stream stopped", logger.Int64("stream", int64(s.id)))
}

// Streaming reports whether a stream is active
func (p *Provider) Streaming() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stream != nil
}

// Pulse fires one haptic impact. Failures are logged only.
func (p *Provider) Pulse(ctx context.Context, intensity location.Intensity) {
	if p.haptics == nil {
		return
	}
	if err := p.haptics.Impact(ctx, intensity); err != nil {
		logger.Warn("Error triggering haptic feedback",
			logger.String("intensity", string(intensity)),
			logger.Err(err))
	}
}

// SOSPulse plays three heavy impacts spaced by the configured gap. It stops
// early on the first failure or when ctx is done.
func (p *Provider) SOSPulse(ctx context.Context) {
	if p.haptics == nil {
		return
	}
	for i := 0; i < sosPulseCount; i++ {
		if err := p.haptics.Impact(ctx, location.IntensityHeavy); err != nil {
			logger.Warn("Error triggering SOS haptic", logger.Err(err))
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.cfg.SOSPulseGap):
		}
	}
}

var _ location.LocationProvider = (*Provider)(nil)
