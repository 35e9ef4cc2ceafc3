package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

var v = viper.New()

func init() {
	v.AutomaticEnv()
}

// InitConfig loads service configuration from the environment, optionally
// merging a local .env file first. Missing keys fall back to defaults so the
// service can boot in development with nothing set.
func InitConfig(envFile string) *models.Config {
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		// Local overrides only; absence is not an error.
		_ = v.ReadInConfig()
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        GetEnv("APP_NAME", "matchmaking"),
			Environment: GetEnv("APP_ENV", "development"),
			Version:     GetEnv("APP_VERSION", "1.0.0"),
		},
		Server: models.ServerConfig{
			Port: GetEnvAsInt("SERVER_PORT", 9990),
		},
		Redis: models.RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		Database: models.DatabaseConfig{
			Host:         GetEnv("DB_HOST", "localhost"),
			Port:         GetEnvAsInt("DB_PORT", 5432),
			Username:     GetEnv("DB_USERNAME", "musafir"),
			Password:     GetEnv("DB_PASSWORD", ""),
			DBName:       GetEnv("DB_NAME", "musafir"),
			SSLMode:      GetEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		NSQ: models.NSQConfig{
			Enabled: GetEnvAsBool("NSQ_ENABLED", false),
			Address: GetEnv("NSQ_ADDRESS", "localhost:4150"),
		},
		JWT: models.JWTConfig{
			Secret:     GetEnv("JWT_SECRET", ""),
			Expiration: GetEnvAsInt("JWT_EXPIRATION_HOURS", 24),
			Issuer:     GetEnv("JWT_ISSUER", "musafir"),
		},
		Match: models.MatchConfig{
			SessionTTLSeconds:  GetEnvAsInt("SESSION_TTL_SECONDS", 86400),
			ScanTimeoutSeconds: GetEnvAsInt("MATCH_SCAN_TIMEOUT", 5),
			WeightDestination:  GetEnvAsFloat("MATCH_WEIGHT_DESTINATION", 0.4),
			WeightBudget:       GetEnvAsFloat("MATCH_WEIGHT_BUDGET", 0.3),
			WeightDates:        GetEnvAsFloat("MATCH_WEIGHT_DATES", 0.3),
		},
		Geocode: models.GeocodeConfig{
			Enabled:        GetEnvAsBool("GEOCODE_ENABLED", false),
			BaseURL:        GetEnv("GEOCODE_BASE_URL", ""),
			TimeoutSeconds: GetEnvAsInt("GEOCODE_TIMEOUT_SECONDS", 2),
		},
		Logger: models.LoggerConfig{
			Level:    GetEnv("LOG_LEVEL", "info"),
			FilePath: GetEnv("LOG_FILE_PATH", ""),
		},
	}
}

// GetEnv retrieves a string value from the environment with a fallback.
func GetEnv(key, fallback string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return fallback
}

// GetEnvAsInt retrieves an integer value from the environment with a fallback.
func GetEnvAsInt(key string, fallback int) int {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetInt(key)
	}
	return fallback
}

// GetEnvAsBool retrieves a boolean value from the environment with a fallback.
func GetEnvAsBool(key string, fallback bool) bool {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetBool(key)
	}
	return fallback
}

// GetEnvAsFloat retrieves a float value from the environment with a fallback.
func GetEnvAsFloat(key string, fallback float64) float64 {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetFloat64(key)
	}
	return fallback
}
