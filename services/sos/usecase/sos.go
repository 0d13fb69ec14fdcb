package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
	"github.com/piresc/saferoute/services/sos"
)

// SOSUC implements sos.SOSUC
type SOSUC struct {
	gw       sos.AlertGW
	provider location.LocationProvider
	metrics  *metrics.Collector
}

// NewSOSUC creates a new SOS use case
func NewSOSUC(gw sos.AlertGW, provider location.LocationProvider, collector *metrics.Collector) *SOSUC {
	return &SOSUC{
		gw:       gw,
		provider: provider,
		metrics:  collector,
	}
}

// Trigger takes a one-shot fix and raises an alert there. Without a fix no
// alert is sent.
func (uc *SOSUC) Trigger(ctx context.Context, tripID *int64, note string) (*models.SOSAlert, error) {
	alert, err := uc.trigger(ctx, tripID, note)
	uc.metrics.SOSTriggered(err)
	return alert, err
}

func (uc *SOSUC) trigger(ctx context.Context, tripID *int64, note string) (*models.SOSAlert, error) {
	pos := uc.provider.CurrentFix(ctx)
	if pos == nil {
		logger.Error("SOS aborted, no location fix")
		return nil, apperrors.ErrFixUnavailable
	}

	alert, err := uc.gw.CreateAlert(ctx, models.SOSCreate{
		Lat:    pos.Latitude,
		Lng:    pos.Longitude,
		TripID: tripID,
		Notes:  note,
	})
	if err != nil {
		logger.Error("SOS submission failed", logger.Err(err))
		return nil, err
	}

	logger.Warn("SOS raised",
		logger.Int64("alert_id", alert.ID),
		logger.Float64("lat", pos.Latitude),
		logger.Float64("lng", pos.Longitude))

	uc.provider.SOSPulse(ctx)
	return alert, nil
}

// ActiveAlerts lists alerts still awaiting resolution
func (uc *SOSUC) ActiveAlerts(ctx context.Context) ([]models.SOSAlert, error) {
	return uc.gw.ListAlerts(ctx, true)
}

// Acknowledge marks an alert as seen
func (uc *SOSUC) Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error) {
	alert, err := uc.gw.Acknowledge(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("acknowledge alert %d: %w", alertID, err)
	}
	logger.Info("SOS acknowledged", logger.Int64("alert_id", alertID))
	return alert, nil
}

// Resolve closes an alert with dispatcher notes
func (uc *SOSUC) Resolve(ctx context.Context, alertID int64, notes string) (*models.SOSAlert, error) {
	alert, err := uc.gw.Resolve(ctx, alertID, models.SOSResolve{Notes: notes})
	if err != nil {
		return nil, fmt.Errorf("resolve alert %d: %w", alertID, err)
	}
	logger.Info("SOS resolved", logger.Int64("alert_id", alertID))
	return alert, nil
}

var _ sos.SOSUC = (*SOSUC)(nil)
