package routes

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// RouteGW is the backend routes API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/saferoute/services/routes RouteGW
type RouteGW interface {
	GetRoute(ctx context.Context, routeID int64) (*models.Route, error)
	AddStop(ctx context.Context, routeID int64, stop models.RouteStopCreate) (*models.RouteStop, error)
	UpdateStop(ctx context.Context, routeID, stopID int64, update models.RouteStopUpdate) (*models.RouteStop, error)
	DeleteStop(ctx context.Context, routeID, stopID int64) error
	// Optimize asks the backend to reorder the stops and returns the new order
	Optimize(ctx context.Context, routeID int64) ([]models.RouteStop, error)
}
