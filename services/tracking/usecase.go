package tracking

import (
	"context"
	"time"

	"github.com/piresc/saferoute/internal/pkg/geo"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/poller"
)

// Task names, also used as metric labels
const (
	TaskRiderTrip      = "rider-trip"
	TaskDriverLocation = "driver-location"
	TaskRiderPosition  = "rider-position"
	TaskSOSAlerts      = "sos-alerts"
	TaskFleetBoard     = "fleet-board"
)

// RiderSnapshot is the rider's live view of the current trip
type RiderSnapshot struct {
	Trip           *models.Trip                 `json:"trip"`
	DriverLocation *models.DriverLocationSample `json:"driver_location"`
	Position       *models.Position             `json:"position"`
	Pickup         *models.Coordinates          `json:"pickup"`
	// LiveEta is nil when either side is unknown or the pair is implausible
	LiveEta      *geo.Estimate `json:"live_eta"`
	DashboardEta *geo.Estimate `json:"dashboard_eta"`
}

// DispatcherSnapshot is the dispatcher's view of alerts and the fleet
type DispatcherSnapshot struct {
	Alerts    []models.SOSAlert             `json:"alerts"`
	Board     []models.DriverLocationSample `json:"board"`
	UpdatedAt time.Time                     `json:"updated_at"`
}

// RiderView keeps a rider's trip, driver location and ETA current
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/saferoute/services/tracking RiderView,DispatcherView,Mirror
type RiderView interface {
	Open(ctx context.Context) error
	Close()
	Snapshot() RiderSnapshot
	Tasks() []poller.Stats
}

// DispatcherView keeps active alerts and the fleet board current
type DispatcherView interface {
	Open(ctx context.Context) error
	Close()
	Snapshot() DispatcherSnapshot
	Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error)
	Resolve(ctx context.Context, alertID int64, notes string) (*models.SOSAlert, error)
	Tasks() []poller.Stats
}

// Mirror republishes dispatcher snapshots to an external sink
type Mirror interface {
	Name() string
	PublishBoard(ctx context.Context, board []models.DriverLocationSample) error
	PublishAlerts(ctx context.Context, alerts []models.SOSAlert) error
}
