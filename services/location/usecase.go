package location

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// LocationProvider owns permission, one-shot fixes, the single continuous
// stream and haptic feedback
// go:generate mockgen -destination=mocks/mock_provider.go -package=mocks github.com/piresc/saferoute/services/location LocationProvider
type LocationProvider interface {
	RequestPermission(ctx context.Context) bool
	CheckPermission(ctx context.Context) bool
	// CurrentFix never fails, it returns nil when no fix could be obtained
	CurrentFix(ctx context.Context) *models.Position
	// LastFix is the latest fix seen by CurrentFix or the stream
	LastFix() *models.Position
	StartStream(onUpdate func(models.Position), onError func(error)) bool
	StopStream()
	Streaming() bool
	Pulse(ctx context.Context, intensity Intensity)
	SOSPulse(ctx context.Context)
}
