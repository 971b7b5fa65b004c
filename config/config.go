package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Booking BookingConfig
	Shift   ShiftConfig
}

type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin string
}

// BackendConfig points at the salon REST backend that owns all records.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CacheConfig controls the list cache in front of the backend. A zero TTL
// disables caching entirely.
type CacheConfig struct {
	TTL time.Duration
}

type BookingConfig struct {
	Location *time.Location
}

type ShiftConfig struct {
	AdminAssignPolicy string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOW_ORIGIN", "*")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8080")
	viper.SetDefault("SALON_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("SHIFT_ADMIN_ASSIGN_POLICY", "override")
	viper.SetDefault("REDIS_PORT", "6379")

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	backendTimeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		backendTimeout = 15 * time.Second
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 30 * time.Second
	}

	location, err := time.LoadLocation(viper.GetString("SALON_TIMEZONE"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:            viper.GetString("APP_PORT"),
			Env:             viper.GetString("APP_ENV"),
			LogLevel:        viper.GetString("LOG_LEVEL"),
			CORSAllowOrigin: viper.GetString("CORS_ALLOW_ORIGIN"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: backendTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
		Booking: BookingConfig{
			Location: location,
		},
		Shift: ShiftConfig{
			AdminAssignPolicy: viper.GetString("SHIFT_ADMIN_ASSIGN_POLICY"),
		},
	}

	return config, nil
}
