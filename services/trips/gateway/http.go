package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/trips"
)

// HTTPGateway talks to the backend /trips and /drivers API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new trips gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// UpdateStatus requests a lifecycle transition
func (g *HTTPGateway) UpdateStatus(ctx context.Context, tripID int64, update models.TripStatusUpdate) (*models.Trip, error) {
	var trip models.Trip
	if err := g.client.PatchJSON(ctx, fmt.Sprintf("/trips/%d/status", tripID), update, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// MyTrips lists the signed-in driver's trips
func (g *HTTPGateway) MyTrips(ctx context.Context) ([]models.Trip, error) {
	var list []models.Trip
	if err := g.client.GetJSON(ctx, "/trips/my", &list); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return list, nil
}

// EmployeeActiveTrip returns the signed-in rider's current trip
func (g *HTTPGateway) EmployeeActiveTrip(ctx context.Context) (*models.Trip, error) {
	var trip models.Trip
	err := g.client.GetJSON(ctx, "/trips/employee/active", &trip)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active trip: %w", err)
	}
	return &trip, nil
}

// GetTrip returns one trip
func (g *HTTPGateway) GetTrip(ctx context.Context, tripID int64) (*models.Trip, error) {
	var trip models.Trip
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/trips/%d", tripID), &trip); err != nil {
		return nil, fmt.Errorf("failed to get trip %d: %w", tripID, err)
	}
	return &trip, nil
}

// CreateTrip schedules a trip for a route
func (g *HTTPGateway) CreateTrip(ctx context.Context, create models.TripCreate) (*models.Trip, error) {
	var trip models.Trip
	if err := g.client.PostJSON(ctx, "/trips/", create, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetDriver returns a driver with its assigned vehicle
func (g *HTTPGateway) GetDriver(ctx context.Context, driverID int64) (*models.Driver, error) {
	var driver models.Driver
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/drivers/%d", driverID), &driver); err != nil {
		return nil, fmt.Errorf("failed to get driver %d: %w", driverID, err)
	}
	return &driver, nil
}

var _ trips.TripGW = (*HTTPGateway)(nil)
