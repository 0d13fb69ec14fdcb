package sos

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// AlertGW is the backend /sos API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/saferoute/services/sos AlertGW
type AlertGW interface {
	CreateAlert(ctx context.Context, alert models.SOSCreate) (*models.SOSAlert, error)
	ListAlerts(ctx context.Context, activeOnly bool) ([]models.SOSAlert, error)
	Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error)
	Resolve(ctx context.Context, alertID int64, resolve models.SOSResolve) (*models.SOSAlert, error)
}
