// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings for the service.
type Config struct {
	Environment string
	HTTPAddr    string

	Database      Database
	Observability Observability
	Bootstrap     Bootstrap

	// BaseCurrency is the canonical unit every amount is stored in.
	BaseCurrency string
}

// Database configures the gorm connection.
type Database struct {
	Driver string
	DSN    string
}

// Observability configures logging, tracing and metrics.
type Observability struct {
	ServiceName      string
	ServiceVersion   string
	TracingEnabled   bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
	ShutdownTimeout  time.Duration
}

// Bootstrap controls optional startup behaviour for local runs.
type Bootstrap struct {
	SeedDemoData bool
}

// Load reads configuration from environment variables with local defaults.
func Load() Config {
	return Config{
		Environment: envString("RENTORA_ENV", "development"),
		HTTPAddr:    envString("RENTORA_HTTP_ADDR", ":8080"),
		Database: Database{
			Driver: envString("RENTORA_DB_DRIVER", "sqlite"),
			DSN:    envString("RENTORA_DB_DSN", "file:rentora.db?cache=shared"),
		},
		Observability: Observability{
			ServiceName:      envString("RENTORA_SERVICE_NAME", "rentora"),
			ServiceVersion:   envString("RENTORA_SERVICE_VERSION", "dev"),
			TracingEnabled:   envBool("RENTORA_TRACING_ENABLED", false),
			ExporterEndpoint: envString("RENTORA_OTLP_ENDPOINT", "localhost:4317"),
			ExporterProtocol: envString("RENTORA_OTLP_PROTOCOL", "grpc"),
			SamplingRatio:    envFloat("RENTORA_TRACE_SAMPLING_RATIO", 1.0),
			ShutdownTimeout:  envDuration("RENTORA_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Bootstrap: Bootstrap{
			SeedDemoData: envBool("RENTORA_SEED_DEMO_DATA", true),
		},
		BaseCurrency: envString("RENTORA_BASE_CURRENCY", "VND"),
	}
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
