package geo

import (
	"math"

	"github.com/piresc/saferoute/internal/pkg/models"
)

const (
	// DashboardSpeedKmh is the coarse average speed for the rider dashboard
	DashboardSpeedKmh = 30.0
	// LiveSpeedKmh is the in-trip average speed, 2.5 minutes per km
	LiveSpeedKmh = 24.0
	// MaxPlausibleKm is the distance above which a driver/rider pair is
	// treated as bogus (a default or stale coordinate on one side)
	MaxPlausibleKm = 500.0
)

// EstimateEtaMinutes returns ceil(distanceKm / avgSpeedKmh * 60). A
// non-positive speed yields zero.
func EstimateEtaMinutes(distanceKm, avgSpeedKmh float64) int {
	if avgSpeedKmh <= 0 || distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / avgSpeedKmh * 60))
}

// Estimate is a distance with its derived ETA
type Estimate struct {
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes int     `json:"eta_minutes"`
}

// Estimator computes ETAs with configurable speed assumptions
type Estimator struct {
	DashboardSpeedKmh float64
	LiveSpeedKmh      float64
	MaxPlausibleKm    float64
}

// NewEstimator builds an estimator from configuration, falling back to the
// package defaults for unset values
func NewEstimator(cfg models.ETAConfig) Estimator {
	e := Estimator{
		DashboardSpeedKmh: cfg.DashboardSpeedKmh,
		LiveSpeedKmh:      cfg.LiveSpeedKmh,
		MaxPlausibleKm:    cfg.MaxPlausibleKm,
	}
	if e.DashboardSpeedKmh <= 0 {
		e.DashboardSpeedKmh = DashboardSpeedKmh
	}
	if e.LiveSpeedKmh <= 0 {
		e.LiveSpeedKmh = LiveSpeedKmh
	}
	if e.MaxPlausibleKm <= 0 {
		e.MaxPlausibleKm = MaxPlausibleKm
	}
	return e
}

// LiveEta estimates the driver's arrival at the rider during a trip. It
// returns nil when the pair is further apart than MaxPlausibleKm.
func (e Estimator) LiveEta(driver, rider models.Coordinates) *Estimate {
	d := DistanceKm(driver, rider)
	if d > e.MaxPlausibleKm {
		return nil
	}
	return &Estimate{DistanceKm: d, EtaMinutes: EstimateEtaMinutes(d, e.LiveSpeedKmh)}
}

// DashboardEta estimates the driver's arrival at a fixed pickup point
func (e Estimator) DashboardEta(driver, pickup models.Coordinates) *Estimate {
	d := DistanceKm(driver, pickup)
	return &Estimate{DistanceKm: d, EtaMinutes: EstimateEtaMinutes(d, e.DashboardSpeedKmh)}
}
