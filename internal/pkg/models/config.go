package models

// Config holds all runtime configuration for the matchmaking service.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Geocode  GeocodeConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level identity settings.
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
}

// RedisConfig holds session store connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// DatabaseConfig holds group catalog (Postgres) connection settings.
type DatabaseConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// NSQConfig holds event bus producer settings.
type NSQConfig struct {
	Enabled bool
	Address string
}

// JWTConfig holds settings for the optional bearer-token guard. An empty
// secret disables the guard entirely.
type JWTConfig struct {
	Secret     string
	Expiration int // hours
	Issuer     string
}

// MatchConfig holds matchmaking tunables.
type MatchConfig struct {
	SessionTTLSeconds  int
	ScanTimeoutSeconds int
	WeightDestination  float64
	WeightBudget       float64
	WeightDates        float64
}

// Weights assembles the configured blend as MatchWeights.
func (m MatchConfig) Weights() MatchWeights {
	return MatchWeights{
		Destination: m.WeightDestination,
		Budget:      m.WeightBudget,
		Dates:       m.WeightDates,
	}
}

// GeocodeConfig holds settings for the best-effort destination geocoder.
type GeocodeConfig struct {
	Enabled        bool
	BaseURL        string
	TimeoutSeconds int
}

// LoggerConfig holds logger settings.
type LoggerConfig struct {
	Level    string
	FilePath string
}
