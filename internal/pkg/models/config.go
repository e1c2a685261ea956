package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	API      APIConfig
	Poll     PollConfig
	Location LocationConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig contains dispatch backend connection configuration
type APIConfig struct {
	BaseURL          string
	Timeout          int // per-attempt timeout in seconds
	MaxRetries       int
	RetryBaseDelay   int // milliseconds
	FallbackDriverID int64
}

// PollConfig contains polling intervals in seconds
type PollConfig struct {
	PoolInterval     int
	OrdersInterval   int
	MessagesInterval int
}

// LocationConfig contains location reporting configuration
type LocationConfig struct {
	UpdateInterval   int // seconds between reports
	GeohashPrecision uint
}

// ServerConfig contains the agent status HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int
}

// DatabaseConfig contains the order log database configuration.
// An empty Host disables the order log entirely.
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration for the
// Redis-backed credential store. An empty Host disables it.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the lifecycle event publisher configuration.
// An empty Address disables publishing.
type NSQConfig struct {
	Address string
	Topic   string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
