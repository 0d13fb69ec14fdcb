package geo

import (
	"math"
	"testing"

	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bangalore  = models.Coordinates{Lat: 12.9716, Lng: 77.5946}
	koramangla = models.Coordinates{Lat: 12.9352, Lng: 77.6146}
	mountainVw = models.Coordinates{Lat: 37.3861, Lng: -122.0839}
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Coordinates
		b         models.Coordinates
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			a:         bangalore,
			b:         bangalore,
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "Across Bangalore",
			a:         bangalore,
			b:         koramangla,
			expected:  4.59,
			tolerance: 0.01,
		},
		{
			name:      "Jakarta to Bandung (approximately)",
			a:         models.Coordinates{Lat: -6.175392, Lng: 106.827153},
			b:         models.Coordinates{Lat: -6.914744, Lng: 107.609810},
			expected:  119.3,
			tolerance: 0.5,
		},
		{
			name:      "Cross 180th meridian",
			a:         models.Coordinates{Lat: 0.0, Lng: 179.0},
			b:         models.Coordinates{Lat: 0.0, Lng: -179.0},
			expected:  222.4,
			tolerance: 0.5,
		},
		{
			name:      "Pole to pole",
			a:         models.Coordinates{Lat: 90.0, Lng: 0.0},
			b:         models.Coordinates{Lat: -90.0, Lng: 0.0},
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DistanceKm(tt.a, tt.b)

			assert.GreaterOrEqual(t, result, 0.0)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []models.Coordinates{
		bangalore,
		koramangla,
		mountainVw,
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 0},
		{Lat: 89.9, Lng: -179.9},
	}

	for _, a := range points {
		assert.Equal(t, 0.0, DistanceKm(a, a))
		for _, b := range points {
			assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
		}
	}
}

func TestEstimateEtaMinutes(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		expected int
	}{
		{name: "Live speed, 4.3 km", distance: 4.3, speed: LiveSpeedKmh, expected: 11},
		{name: "Dashboard speed, 4.3 km", distance: 4.3, speed: DashboardSpeedKmh, expected: 9},
		{name: "Exact minute", distance: 2.0, speed: 24.0, expected: 5},
		{name: "Rounds up fractions", distance: 0.01, speed: 24.0, expected: 1},
		{name: "Zero distance", distance: 0, speed: 24.0, expected: 0},
		{name: "Zero speed", distance: 5, speed: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateEtaMinutes(tt.distance, tt.speed))
		})
	}
}

func TestEstimator_LiveEta(t *testing.T) {
	e := NewEstimator(models.ETAConfig{})

	t.Run("Nearby pair", func(t *testing.T) {
		est := e.LiveEta(bangalore, koramangla)
		require.NotNil(t, est)
		assert.InDelta(t, 4.59, est.DistanceKm, 0.01)
		assert.Equal(t, int(math.Ceil(est.DistanceKm*2.5)), est.EtaMinutes)
	})

	t.Run("Implausible pair is suppressed", func(t *testing.T) {
		assert.Greater(t, DistanceKm(bangalore, mountainVw), MaxPlausibleKm)
		assert.Nil(t, e.LiveEta(bangalore, mountainVw))
	})
}

func TestEstimator_DashboardEta(t *testing.T) {
	e := NewEstimator(models.ETAConfig{DashboardSpeedKmh: 30})

	est := e.DashboardEta(bangalore, koramangla)

	require.NotNil(t, est)
	assert.Equal(t, 10, est.EtaMinutes)
}

func TestNewEstimator_Overrides(t *testing.T) {
	e := NewEstimator(models.ETAConfig{DashboardSpeedKmh: 40, LiveSpeedKmh: 20, MaxPlausibleKm: 100})

	assert.Equal(t, 40.0, e.DashboardSpeedKmh)
	assert.Equal(t, 20.0, e.LiveSpeedKmh)
	assert.Equal(t, 100.0, e.MaxPlausibleKm)
}

func TestCell(t *testing.T) {
	hash := Cell(bangalore, DefaultCellPrecision)

	assert.Len(t, hash, int(DefaultCellPrecision))
	assert.Equal(t, "tdr1", hash[:4])
	assert.Equal(t, hash[:5], Cell(bangalore, 5))
}

func TestBearingDeg(t *testing.T) {
	north := models.Coordinates{Lat: 13.9716, Lng: 77.5946}
	east := models.Coordinates{Lat: 12.9716, Lng: 78.5946}

	assert.InDelta(t, 0, BearingDeg(bangalore, north), 1e-6)
	assert.InDelta(t, 180, BearingDeg(north, bangalore), 1e-6)
	assert.InDelta(t, 90, BearingDeg(bangalore, east), 0.2)
	assert.InDelta(t, 0, BearingDeg(bangalore, bangalore), 1e-9)
}

func BenchmarkDistanceKm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DistanceKm(bangalore, koramangla)
	}
}
