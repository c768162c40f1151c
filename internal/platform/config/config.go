package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MetricsEnabled  bool

	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

const (
	defaultAddr            = ":3000"
	defaultEnvironment     = "development"
	defaultLogLevel        = "info"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed values fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr:            stringFromEnv("RESIDENTS_ADDR", defaultAddr),
		Environment:     stringFromEnv("APP_ENV", defaultEnvironment),
		LogLevel:        stringFromEnv("LOG_LEVEL", defaultLogLevel),
		RequestTimeout:  durationFromEnv("REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout: durationFromEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MetricsEnabled:  boolFromEnv("METRICS_ENABLED", true),

		TracingEnabled:     boolFromEnv("TRACING_ENABLED", false),
		TracingEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TracingSampleRatio: ratioFromEnv("TRACING_SAMPLE_RATIO", 1),
	}
}

// IsProduction reports whether the service runs in the production environment.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

func stringFromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func boolFromEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// ratioFromEnv reads a value in [0, 1].
func ratioFromEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}
