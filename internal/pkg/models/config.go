package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Fees     FeeConfig
	Sweep    SweepConfig
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

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GatewayConfig contains payment provider configuration
type GatewayConfig struct {
	BaseURL        string
	APIKey         string
	SecretKey      string
	ContractCode   string
	CallbackURL    string // backend callback the provider redirects the browser to
	FrontendURL    string // frontend page the callback forwards the browser to
	TimeoutSeconds int
}

// FeeConfig contains the fee breakdown applied to every currency order
type FeeConfig struct {
	Printing       int64
	Delivery       int64
	Reconciliation int64
	CurrencyCode   string
}

// SweepConfig contains reserved account sweep configuration
type SweepConfig struct {
	Schedule   string // cron expression
	MaxRetries int
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
