package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Warehouse WarehouseConfig
	Cache     CacheConfig
	Logger    LoggerConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port            int           `envconfig:"SERVER_PORT" default:"8084"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// WarehouseConfig selects the sales data source. When DSN is set the dataset
// is loaded from the warehouse; otherwise CSVFile is read as a flat extract
// of the same consolidated query.
type WarehouseConfig struct {
	DSN          string        `envconfig:"WAREHOUSE_DSN"`
	CSVFile      string        `envconfig:"CSV_FILE" default:"sales.csv"`
	QueryTimeout time.Duration `envconfig:"WAREHOUSE_QUERY_TIMEOUT" default:"30s"`
}

// CacheConfig controls the snapshot cache. The loaded dataset is memoized for
// TTL and can be dropped early via the admin refresh endpoint. When RedisAddr
// is set the snapshot is shared through Redis instead of process memory.
type CacheConfig struct {
	RedisAddr string        `envconfig:"REDIS_ADDR"`
	TTL       time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

type LoggerConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type SecurityConfig struct {
	EnableRateLimit bool     `envconfig:"SECURITY_RATE_LIMIT_ENABLED" default:"true"`
	RateLimitRPS    int      `envconfig:"SECURITY_RATE_LIMIT_RPS" default:"100"`
	RateLimitBurst  int      `envconfig:"SECURITY_RATE_LIMIT_BURST" default:"10"`
	AllowedOrigins  []string `envconfig:"SECURITY_ALLOWED_ORIGINS" default:"http://localhost:8084"`
	TrustedProxies  []string `envconfig:"SECURITY_TRUSTED_PROXIES" default:"127.0.0.1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.Warehouse.DSN == "" && c.Warehouse.CSVFile == "" {
		return fmt.Errorf("either WAREHOUSE_DSN or CSV_FILE must be set")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.Logger.Level)
	}

	switch strings.ToLower(c.Logger.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q, must be json or text", c.Logger.Format)
	}

	if c.Security.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit RPS must be positive")
	}

	if c.Security.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}

	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
