package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`    // Total time spent retrying the initial connection
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`

	// BootstrapFromConsultant creates a system user on first login when the
	// WQ id exists in the consultant snapshots but has no account yet.
	BootstrapFromConsultant bool `mapstructure:"bootstrap_from_consultant"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig holds response cache configuration.
// Cached entries expire at the next ExpireHour:ExpireMinute in Timezone.
type CacheConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ExpireHour   int    `mapstructure:"expire_hour"`
	ExpireMinute int    `mapstructure:"expire_minute"`
	Timezone     string `mapstructure:"timezone"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute"`
}

// RequestLogConfig holds configuration for the persisted request log
type RequestLogConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	PoolSize  int  `mapstructure:"pool_size"`
	QueueSize int  `mapstructure:"queue_size"`
}

// AnalyticsConfig holds the fallback anchor dates used by the cohort
// comparisons when the event calendar has fewer than two markers.
type AnalyticsConfig struct {
	ValueFactorBaseDate   string `mapstructure:"value_factor_base_date"`
	ValueFactorTargetDate string `mapstructure:"value_factor_target_date"`
	CombinedBaseDate      string `mapstructure:"combined_base_date"`
	CombinedTargetDate    string `mapstructure:"combined_target_date"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	RequestLog RequestLogConfig `mapstructure:"request_log"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.connect_timeout", "30s")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.token_ttl", "168h") // 7 days
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://127.0.0.1:5173",
		"http://127.0.0.1:3000",
	})
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.expire_hour", 14)
	v.SetDefault("cache.expire_minute", 0)
	v.SetDefault("cache.timezone", "Asia/Shanghai")
	v.SetDefault("rate_limit.login_per_minute", 30)
	v.SetDefault("request_log.enabled", true)
	v.SetDefault("request_log.pool_size", 4)
	v.SetDefault("request_log.queue_size", 1000)
	v.SetDefault("analytics.value_factor_base_date", "2026-02-10")
	v.SetDefault("analytics.value_factor_target_date", "2026-02-11")
	v.SetDefault("analytics.combined_base_date", "2026-02-10")
	v.SetDefault("analytics.combined_target_date", "2026-02-11")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required")
	}
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Cache.ExpireHour < 0 || cfg.Cache.ExpireHour > 23 {
		return nil, fmt.Errorf("cache.expire_hour must be within 0..23, got %d", cfg.Cache.ExpireHour)
	}
	if cfg.Cache.ExpireMinute < 0 || cfg.Cache.ExpireMinute > 59 {
		return nil, fmt.Errorf("cache.expire_minute must be within 0..59, got %d", cfg.Cache.ExpireMinute)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_LEADERBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.connect_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_secret",
		"auth.token_ttl",
		"auth.bootstrap_from_consultant",
		// CORS
		"cors.allowed_origins",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Cache
		"cache.enabled",
		"cache.expire_hour",
		"cache.expire_minute",
		"cache.timezone",
		// Rate limit
		"rate_limit.login_per_minute",
		// Request log
		"request_log.enabled",
		"request_log.pool_size",
		"request_log.queue_size",
		// Analytics anchors
		"analytics.value_factor_base_date",
		"analytics.value_factor_target_date",
		"analytics.combined_base_date",
		"analytics.combined_target_date",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Address returns the host:port the HTTP server listens on
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
