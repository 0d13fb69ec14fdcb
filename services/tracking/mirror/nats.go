package mirror

import (
	"context"
	"time"

	"github.com/piresc/saferoute/internal/pkg/circuitbreaker"
	"github.com/piresc/saferoute/internal/pkg/constants"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/nats"
	"github.com/piresc/saferoute/services/tracking"
)

// BoardMessage is published on the fleet board subject
type BoardMessage struct {
	Drivers     []models.DriverLocationSample `json:"drivers"`
	PublishedAt time.Time                     `json:"published_at"`
}

// AlertsMessage is published on the active SOS subject
type AlertsMessage struct {
	Alerts      []models.SOSAlert `json:"alerts"`
	PublishedAt time.Time         `json:"published_at"`
}

// NATSMirror fans dispatcher snapshots out over NATS
type NATSMirror struct {
	producer *nats.Producer
	breakers *circuitbreaker.Manager
}

// NewNATSMirror creates a NATS mirror
func NewNATSMirror(producer *nats.Producer, breakers *circuitbreaker.Manager) *NATSMirror {
	return &NATSMirror{
		producer: producer,
		breakers: breakers,
	}
}

// Name implements tracking.Mirror
func (m *NATSMirror) Name() string {
	return "nats"
}

// PublishBoard implements tracking.Mirror
func (m *NATSMirror) PublishBoard(ctx context.Context, board []models.DriverLocationSample) error {
	return m.breakers.Execute(ctx, "nats-mirror", func(context.Context) error {
		return m.producer.Publish(constants.SubjectFleetBoard, BoardMessage{
			Drivers:     board,
			PublishedAt: models.Now(),
		})
	})
}

// PublishAlerts implements tracking.Mirror
func (m *NATSMirror) PublishAlerts(ctx context.Context, alerts []models.SOSAlert) error {
	return m.breakers.Execute(ctx, "nats-mirror", func(context.Context) error {
		return m.producer.Publish(constants.SubjectSOSActive, AlertsMessage{
			Alerts:      alerts,
			PublishedAt: models.Now(),
		})
	})
}

var _ tracking.Mirror = (*NATSMirror)(nil)
