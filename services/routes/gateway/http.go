package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/routes"
)

// HTTPGateway talks to the backend /routes API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new routes gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// GetRoute returns a route with its stops
func (g *HTTPGateway) GetRoute(ctx context.Context, routeID int64) (*models.Route, error) {
	var route models.Route
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/routes/%d", routeID), &route); err != nil {
		return nil, fmt.Errorf("failed to get route %d: %w", routeID, err)
	}
	return &route, nil
}

// AddStop creates one stop
func (g *HTTPGateway) AddStop(ctx context.Context, routeID int64, stop models.RouteStopCreate) (*models.RouteStop, error) {
	var created models.RouteStop
	if err := g.client.PostJSON(ctx, fmt.Sprintf("/routes/%d/stops", routeID), stop, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStop changes a stop's sequence order
func (g *HTTPGateway) UpdateStop(ctx context.Context, routeID, stopID int64, update models.RouteStopUpdate) (*models.RouteStop, error) {
	var updated models.RouteStop
	if err := g.client.PutJSON(ctx, fmt.Sprintf("/routes/%d/stops/%d", routeID, stopID), update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteStop removes a stop, the backend renumbers the rest
func (g *HTTPGateway) DeleteStop(ctx context.Context, routeID, stopID int64) error {
	return g.client.DeleteJSON(ctx, fmt.Sprintf("/routes/%d/stops/%d", routeID, stopID))
}

// Optimize runs the backend nearest-neighbour ordering
func (g *HTTPGateway) Optimize(ctx context.Context, routeID int64) ([]models.RouteStop, error) {
	var stops []models.RouteStop
	if err := g.client.PostJSON(ctx, fmt.Sprintf("/routes/%d/optimize", routeID), nil, &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

var _ routes.RouteGW = (*HTTPGateway)(nil)
