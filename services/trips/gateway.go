package trips

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// TripGW is the backend trips API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/saferoute/services/trips TripGW
type TripGW interface {
	UpdateStatus(ctx context.Context, tripID int64, update models.TripStatusUpdate) (*models.Trip, error)
	MyTrips(ctx context.Context) ([]models.Trip, error)
	// EmployeeActiveTrip returns nil when the rider has no active trip
	EmployeeActiveTrip(ctx context.Context) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID int64) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip models.TripCreate) (*models.Trip, error)
	GetDriver(ctx context.Context, driverID int64) (*models.Driver, error)
}
