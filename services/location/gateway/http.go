package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	"github.com/piresc/saferoute/internal/pkg/geo"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
)

// HTTPGateway talks to the backend /location API
type HTTPGateway struct {
	client   *httpclient.Client
	validate *validator.Validate
}

// NewHTTPGateway creates a new location gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{
		client:   client,
		validate: validator.New(),
	}
}

// PushLocation sends one stream sample
func (g *HTTPGateway) PushLocation(ctx context.Context, update models.LocationUpdate) (*models.DriverLocationSample, error) {
	if err := g.validate.Struct(update); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidLocation, err)
	}

	var sample models.DriverLocationSample
	if err := g.client.PostJSON(ctx, "/location/", update, &sample); err != nil {
		return nil, fmt.Errorf("failed to push location: %w", err)
	}
	return &sample, nil
}

// DriverLocation returns the latest sample of a driver, nil when the driver
// never reported
func (g *HTTPGateway) DriverLocation(ctx context.Context, driverID int64) (*models.DriverLocationSample, error) {
	var sample *models.DriverLocationSample
	err := g.client.GetJSON(ctx, fmt.Sprintf("/location/driver/%d", driverID), &sample)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if sample != nil {
		sample.Geohash = geo.Cell(sample.Coordinates(), geo.DefaultCellPrecision)
	}
	return sample, nil
}

// AllLocations returns the fleet board, latest sample per driver
func (g *HTTPGateway) AllLocations(ctx context.Context) ([]models.DriverLocationSample, error) {
	var samples []models.DriverLocationSample
	if err := g.client.GetJSON(ctx, "/location/all", &samples); err != nil {
		return nil, fmt.Errorf("failed to get fleet board: %w", err)
	}
	for i := range samples {
		samples[i].Geohash = geo.Cell(samples[i].Coordinates(), geo.DefaultCellPrecision)
	}
	return samples, nil
}

var _ location.LocationGW = (*HTTPGateway)(nil)
