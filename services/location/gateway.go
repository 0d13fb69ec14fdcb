package location

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// LocationGW is the backend location API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/saferoute/services/location LocationGW
type LocationGW interface {
	PushLocation(ctx context.Context, update models.LocationUpdate) (*models.DriverLocationSample, error)
	// DriverLocation returns nil when the driver never reported
	DriverLocation(ctx context.Context, driverID int64) (*models.DriverLocationSample, error)
	AllLocations(ctx context.Context) ([]models.DriverLocationSample, error)
}
