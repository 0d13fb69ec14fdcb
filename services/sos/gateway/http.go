package gateway

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/sos"
)

// HTTPGateway talks to the backend /sos API
type HTTPGateway struct {
	client   *httpclient.Client
	validate *validator.Validate
}

// NewHTTPGateway creates a new SOS gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{
		client:   client,
		validate: validator.New(),
	}
}

// CreateAlert raises an alert
func (g *HTTPGateway) CreateAlert(ctx context.Context, alert models.SOSCreate) (*models.SOSAlert, error) {
	if err := g.validate.Struct(alert); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidLocation, err)
	}

	var created models.SOSAlert
	if err := g.client.PostJSON(ctx, "/sos/", alert, &created); err != nil {
		return nil, fmt.Errorf("failed to raise SOS: %w", err)
	}
	return &created, nil
}

// ListAlerts returns alerts newest first
func (g *HTTPGateway) ListAlerts(ctx context.Context, activeOnly bool) ([]models.SOSAlert, error) {
	var alerts []models.SOSAlert
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/sos/?active_only=%t", activeOnly), &alerts); err != nil {
		return nil, fmt.Errorf("failed to list SOS alerts: %w", err)
	}
	return alerts, nil
}

// Acknowledge marks an active alert as seen by a dispatcher
func (g *HTTPGateway) Acknowledge(ctx context.Context, alertID int64) (*models.SOSAlert, error) {
	var alert models.SOSAlert
	if err := g.client.PatchJSON(ctx, fmt.Sprintf("/sos/%d/acknowledge", alertID), nil, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Resolve closes an alert
func (g *HTTPGateway) Resolve(ctx context.Context, alertID int64, resolve models.SOSResolve) (*models.SOSAlert, error) {
	var alert models.SOSAlert
	if err := g.client.PatchJSON(ctx, fmt.Sprintf("/sos/%d/resolve", alertID), resolve, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

var _ sos.AlertGW = (*HTTPGateway)(nil)
