package sos

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// SOSUC raises and manages emergency alerts
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/saferoute/services/sos SOSUC
type SOSUC interface {
	// Trigger raises an alert at the current position. tripID is optional.
	Trigger(ctx context.Context, tripID *int64, note string) (*models.SOSAlert, error)
	ActiveAlerts(ctx context.Context) ([]models.SOSAlert, error)
	Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error)
	Resolve(ctx context.Context, alertID int64, notes string) (*models.SOSAlert, error)
}
