package trips

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// TripUC is the driver-side trip state machine
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/saferoute/services/trips TripUC
type TripUC interface {
	// Transition submits target to the backend and applies its side effects
	// only after acknowledgment
	Transition(ctx context.Context, trip models.Trip, target models.TripStatus) (*models.Trip, error)
	LoadMyTrips(ctx context.Context) ([]models.Trip, error)
	// RefreshTrip re-reads one trip from the backend into the local list
	RefreshTrip(ctx context.Context, tripID int64) (*models.Trip, error)
	Trips() []models.Trip
	ActiveTrip() *models.Trip
	CreateTrip(ctx context.Context, route models.Route) (*models.Trip, error)
	StartTracking(ctx context.Context, tripID int64) bool
	StopTracking()
}
