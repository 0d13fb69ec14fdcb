package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the configuration. In the local environment the dotenv
// file at configPath is loaded first; process environment always wins.
func InitConfig(configPath string) (*models.Config, error) {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfigFromEnv(newViper())
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "saferoute-tracker")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)

	v.SetDefault("BACKEND_URL", "http://localhost:8000/api/v1")
	v.SetDefault("BACKEND_TIMEOUT", "15s")
	v.SetDefault("BACKEND_RETRIES", 3)

	v.SetDefault("TOKEN_PATH", ".saferoute/token")

	v.SetDefault("LOCATION_HIGH_ACCURACY_TIMEOUT", "10s")
	v.SetDefault("LOCATION_LOW_ACCURACY_TIMEOUT", "20s")
	v.SetDefault("LOCATION_CACHED_FIX_MAX_AGE", "30s")
	v.SetDefault("LOCATION_PLATFORM", "static")
	v.SetDefault("LOCATION_WAYPOINTS", "12.9716,77.5946")
	v.SetDefault("LOCATION_SIMULATE_INTERVAL", "5s")
	v.SetDefault("LOCATION_SOS_PULSE_GAP", "200ms")

	v.SetDefault("ETA_DASHBOARD_SPEED_KMH", 30.0)
	v.SetDefault("ETA_LIVE_SPEED_KMH", 24.0)
	v.SetDefault("ETA_MAX_PLAUSIBLE_KM", 500.0)

	v.SetDefault("REFRESH_ALERTS_INTERVAL", "5s")
	v.SetDefault("REFRESH_FLEET_BOARD_INTERVAL", "10s")
	v.SetDefault("REFRESH_RIDER_TRIP_INTERVAL", "10s")
	v.SetDefault("REFRESH_DRIVER_LOCATION_INTERVAL", "5s")
	v.SetDefault("REFRESH_RIDER_POSITION_INTERVAL", "30s")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_SAMPLE_TTL", "2m")

	v.SetDefault("NATS_ENABLED", false)
	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("STATUS_ENABLED", true)
	v.SetDefault("STATUS_PORT", 9090)
	v.SetDefault("STATUS_SHUTDOWN_TIMEOUT", "5s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	return v
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Backend config
	configs.Backend.BaseURL = v.GetString("BACKEND_URL")
	configs.Backend.Timeout = v.GetDuration("BACKEND_TIMEOUT")
	configs.Backend.Retries = v.GetInt("BACKEND_RETRIES")

	// Session config
	configs.Session.Username = v.GetString("SESSION_USERNAME")
	configs.Session.Password = v.GetString("SESSION_PASSWORD")
	configs.Session.TokenPath = v.GetString("TOKEN_PATH")

	// Location config
	configs.Location.HighAccuracyTimeout = v.GetDuration("LOCATION_HIGH_ACCURACY_TIMEOUT")
	configs.Location.LowAccuracyTimeout = v.GetDuration("LOCATION_LOW_ACCURACY_TIMEOUT")
	configs.Location.CachedFixMaxAge = v.GetDuration("LOCATION_CACHED_FIX_MAX_AGE")
	configs.Location.Platform = v.GetString("LOCATION_PLATFORM")
	configs.Location.Waypoints = v.GetString("LOCATION_WAYPOINTS")
	configs.Location.SimulateInterval = v.GetDuration("LOCATION_SIMULATE_INTERVAL")
	configs.Location.SOSPulseGap = v.GetDuration("LOCATION_SOS_PULSE_GAP")

	// ETA config
	configs.ETA.DashboardSpeedKmh = v.GetFloat64("ETA_DASHBOARD_SPEED_KMH")
	configs.ETA.LiveSpeedKmh = v.GetFloat64("ETA_LIVE_SPEED_KMH")
	configs.ETA.MaxPlausibleKm = v.GetFloat64("ETA_MAX_PLAUSIBLE_KM")

	// Refresh config
	configs.Refresh.AlertsInterval = v.GetDuration("REFRESH_ALERTS_INTERVAL")
	configs.Refresh.FleetBoardInterval = v.GetDuration("REFRESH_FLEET_BOARD_INTERVAL")
	configs.Refresh.RiderTripInterval = v.GetDuration("REFRESH_RIDER_TRIP_INTERVAL")
	configs.Refresh.DriverLocationInterval = v.GetDuration("REFRESH_DRIVER_LOCATION_INTERVAL")
	configs.Refresh.RiderPositionInterval = v.GetDuration("REFRESH_RIDER_POSITION_INTERVAL")

	// Redis config
	configs.Redis.Enabled = v.GetBool("REDIS_ENABLED")
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	configs.Redis.SampleTTL = v.GetDuration("REDIS_SAMPLE_TTL")

	// NATS config
	configs.NATS.Enabled = v.GetBool("NATS_ENABLED")
	configs.NATS.URL = v.GetString("NATS_URL")

	// Status server config
	configs.Status.Enabled = v.GetBool("STATUS_ENABLED")
	configs.Status.Port = v.GetInt("STATUS_PORT")
	configs.Status.ShutdownTimeout = v.GetDuration("STATUS_SHUTDOWN_TIMEOUT")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// Validate checks the struct tags of every config section
func Validate(configs *models.Config) error {
	if err := validator.New().Struct(configs); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetEnv returns the environment value for key or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
