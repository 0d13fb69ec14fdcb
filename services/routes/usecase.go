package routes

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// Direction is a one-step manual reorder
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Sequencer owns the ordered stop list of one route
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/saferoute/services/routes Sequencer
type Sequencer interface {
	RouteID() int64
	Load(ctx context.Context) error
	AddStops(ctx context.Context, employeeIDs []int64) error
	MoveStop(ctx context.Context, index int, dir Direction) error
	RemoveStop(ctx context.Context, stopID int64) error
	Optimize(ctx context.Context) error
	// Stops returns a copy of the current list ordered by sequence
	Stops() []models.RouteStop
	Route() *models.Route
}
