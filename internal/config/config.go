package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's minimum log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins restricts CORS to the listed origins, empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// PprofEnabled mounts the profiling endpoints under /debug/pprof/
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"a11yscanner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair used for bearer authentication
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Scanner contains the content scanner settings
	Scanner struct {
		// BatchSize is the number of content items processed per batch, clamped to 10..100
		BatchSize int `env:"SCANNER_BATCH_SIZE" env-default:"50" yaml:"batchSize"`
		// SessionTTL is how long an abandoned scan session stays readable
		SessionTTL time.Duration `env:"SCANNER_SESSION_TTL" env-default:"1h" yaml:"sessionTTL"`
		// MaxItems caps the number of items per scan, 0 means unlimited
		MaxItems int `env:"SCANNER_MAX_ITEMS" env-default:"0" yaml:"maxItems"`
		// ExcludedTypes are content types skipped unless a request names its own
		ExcludedTypes []string `env:"SCANNER_EXCLUDED_TYPES" env-separator:"," yaml:"excludedTypes"`
		// DedupFindings switches finding persistence from append-only to upsert
		DedupFindings bool `env:"SCANNER_DEDUP_FINDINGS" env-default:"false" yaml:"dedupFindings"`
		// ContentSource selects where content is read from: postgres or wpapi
		ContentSource string `env:"SCANNER_CONTENT_SOURCE" env-default:"postgres" yaml:"contentSource"`
		// MaxAttempts is the number of attempts of background scan jobs
		MaxAttempts int `env:"SCANNER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
	} `yaml:"scanner"`

	// WPAPI configures the WordPress REST content source
	WPAPI struct {
		// BaseURL is the root URL of the WordPress site
		BaseURL string `env:"WPAPI_BASE_URL" yaml:"baseURL"`
		// Username is the optional application password user
		Username string `env:"WPAPI_USERNAME" yaml:"username"`
		// Password is the optional application password
		Password string `env:"WPAPI_PASSWORD" yaml:"password"`
		// Timeout bounds every request to the site
		Timeout time.Duration `env:"WPAPI_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"wpapi"`

	// Report configures the exported reports
	Report struct {
		// SiteURL is the public URL of the scanned site written into exports
		SiteURL string `env:"REPORT_SITE_URL" env-default:"http://localhost" yaml:"siteURL"`
		// Version is the application version written into exports
		Version string `env:"REPORT_VERSION" env-default:"1.0.0" yaml:"version"`
	} `yaml:"report"`

	// Workers configures the background job workers
	Workers struct {
		// MaxWorkers is the number of jobs worked concurrently
		MaxWorkers int `env:"WORKERS_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"workers"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
