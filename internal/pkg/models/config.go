package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Session  SessionConfig
	Location LocationConfig
	ETA      ETAConfig
	Refresh  RefreshConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Status   StatusConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `validate:"required"`
	Environment string
	Debug       bool
	Version     string
}

// BackendConfig points at the Safe Route REST backend
type BackendConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
	// Retries bounds the authoritative reload retry, zero disables it
	Retries int `validate:"gte=0,lte=10"`
}

// SessionConfig contains credentials and token persistence
type SessionConfig struct {
	Username  string
	Password  string
	TokenPath string `validate:"required"`
}

// LocationConfig contains fix timeouts and the simulated platform setup
type LocationConfig struct {
	HighAccuracyTimeout time.Duration `validate:"gt=0"`
	LowAccuracyTimeout  time.Duration `validate:"gt=0"`
	CachedFixMaxAge     time.Duration `validate:"gte=0"`
	Platform            string        `validate:"oneof=simulated static"`
	// Waypoints is a "lat,lng;lat,lng" list replayed by the simulator
	Waypoints        string
	SimulateInterval time.Duration `validate:"gt=0"`
	SOSPulseGap      time.Duration `validate:"gte=0"`
}

// ETAConfig holds the two average-speed assumptions and the outlier cutoff
type ETAConfig struct {
	DashboardSpeedKmh float64 `validate:"gt=0"`
	LiveSpeedKmh      float64 `validate:"gt=0"`
	MaxPlausibleKm    float64 `validate:"gt=0"`
}

// RefreshConfig contains polling cadences
type RefreshConfig struct {
	AlertsInterval         time.Duration `validate:"gt=0"`
	FleetBoardInterval     time.Duration `validate:"gt=0"`
	RiderTripInterval      time.Duration `validate:"gt=0"`
	DriverLocationInterval time.Duration `validate:"gt=0"`
	RiderPositionInterval  time.Duration `validate:"gt=0"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	// SampleTTL expires per-driver board entries
	SampleTTL time.Duration
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	Enabled bool
	URL     string
}

// StatusConfig contains the local status server configuration
type StatusConfig struct {
	Enabled         bool
	Port            int `validate:"gte=0,lte=65535"`
	ShutdownTimeout time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `validate:"oneof=debug info warn error"`
	FilePath string
}
