package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/saferoute/internal/pkg/circuitbreaker"
	"github.com/piresc/saferoute/internal/pkg/constants"
	"github.com/piresc/saferoute/internal/pkg/database"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/tracking"
)

const defaultSampleTTL = 2 * time.Minute

// RedisMirror writes the fleet board into a GEO set plus one expiring JSON
// key per driver. The GEO set is rebuilt on every publish and holds only the
// drivers on the latest board.
type RedisMirror struct {
	client   *database.RedisClient
	breakers *circuitbreaker.Manager
	ttl      time.Duration
}

// NewRedisMirror creates a Redis mirror
func NewRedisMirror(client *database.RedisClient, breakers *circuitbreaker.Manager, ttl time.Duration) *RedisMirror {
	if ttl <= 0 {
		ttl = defaultSampleTTL
	}
	return &RedisMirror{
		client:   client,
		breakers: breakers,
		ttl:      ttl,
	}
}

// Name implements tracking.Mirror
func (m *RedisMirror) Name() string {
	return "redis"
}

// PublishBoard implements tracking.Mirror
func (m *RedisMirror) PublishBoard(ctx context.Context, board []models.DriverLocationSample) error {
	return m.breakers.Execute(ctx, "redis-mirror", func(ctx context.Context) error {
		locations := make([]*redis.GeoLocation, 0, len(board))
		for _, s := range board {
			locations = append(locations, &redis.GeoLocation{
				Name:      strconv.FormatInt(s.DriverID, 10),
				Longitude: s.Lng,
				Latitude:  s.Lat,
			})
		}
		if err := m.client.ReplaceGeoSet(ctx, constants.KeyFleetBoardGeo, constants.KeyFleetBoardGeoStaging, locations...); err != nil {
			return fmt.Errorf("failed to replace board geo set: %w", err)
		}

		for _, s := range board {
			payload, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to marshal sample: %w", err)
			}
			key := fmt.Sprintf(constants.KeyFleetDriver, s.DriverID)
			if err := m.client.Set(ctx, key, payload, m.ttl); err != nil {
				return fmt.Errorf("failed to store driver %d: %w", s.DriverID, err)
			}
		}

		if err := m.client.Set(ctx, constants.KeyFleetBoardTS, models.Now().UnixMilli(), 0); err != nil {
			return fmt.Errorf("failed to stamp board: %w", err)
		}

		logger.Debug("Fleet board mirrored to redis", logger.Int("drivers", len(board)))
		return nil
	})
}

// PublishAlerts implements tracking.Mirror
func (m *RedisMirror) PublishAlerts(ctx context.Context, alerts []models.SOSAlert) error {
	return m.breakers.Execute(ctx, "redis-mirror", func(ctx context.Context) error {
		if alerts == nil {
			alerts = []models.SOSAlert{}
		}
		payload, err := json.Marshal(alerts)
		if err != nil {
			return fmt.Errorf("failed to marshal alerts: %w", err)
		}
		if err := m.client.Set(ctx, constants.KeySOSActive, payload, m.ttl); err != nil {
			return fmt.Errorf("failed to store alerts: %w", err)
		}
		return nil
	})
}

var _ tracking.Mirror = (*RedisMirror)(nil)
