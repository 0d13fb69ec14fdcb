package nats

import (
	"encoding/json"
	"fmt"

	"github.com/piresc/saferoute/internal/pkg/logger"
)

// Publisher is the raw publish capability a Producer needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Producer publishes JSON encoded messages
type Producer struct {
	pub Publisher
}

// NewProducer wraps pub, usually a *Client
func NewProducer(pub Publisher) *Producer {
	return &Producer{pub: pub}
}

// Publish marshals message and sends it to the subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.pub.Publish(subject, msgBytes); err != nil {
		return err
	}

	logger.Debug("Published message",
		logger.String("subject", subject),
		logger.Int("bytes", len(msgBytes)))
	return nil
}
