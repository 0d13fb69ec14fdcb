package location

import (
	"context"
	"time"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// FixOptions controls a single fix or a watch
type FixOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge is how old a cached fix may be, zero forces a fresh one
	MaximumAge time.Duration
}

// PermissionState is the platform's location permission
type PermissionState struct {
	Fine   bool
	Coarse bool
}

// Granted reports whether either precision is allowed
func (p PermissionState) Granted() bool {
	return p.Fine || p.Coarse
}

// Intensity of a haptic impact
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
)

// Watch is a platform watch handle
type Watch interface {
	Clear()
}

// Geolocator is the platform location capability, injected at construction
// go:generate mockgen -destination=mocks/mock_platform.go -package=mocks github.com/piresc/saferoute/services/location Geolocator,Haptics,Watch
type Geolocator interface {
	// Native reports whether the platform gates location behind permissions
	Native() bool
	RequestPermission(ctx context.Context) (PermissionState, error)
	CheckPermission(ctx context.Context) (PermissionState, error)
	CurrentPosition(ctx context.Context, opts FixOptions) (*models.Position, error)
	// Watch delivers fixes until the handle is cleared. Callbacks may run
	// on any goroutine.
	Watch(opts FixOptions, onUpdate func(models.Position), onError func(error)) (Watch, error)
}

// Haptics is the platform vibration capability
type Haptics interface {
	Impact(ctx context.Context, intensity Intensity) error
}
