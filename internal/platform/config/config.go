// Package config provides configuration loading and validation for the board
// service. Configuration is loaded from YAML files with environment variable
// overrides using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Board     BoardConfig     `koanf:"board"`
	Events    EventsConfig    `koanf:"events"`
	CORS      CORSConfig      `koanf:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the CRM API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig throttles outbound requests. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// BoardConfig holds drag-and-drop and reconciliation settings.
type BoardConfig struct {
	// CollisionMargin inflates droppable regions for the containment check (px).
	CollisionMargin float64 `koanf:"collision_margin"`
	// EdgeThreshold is the scroll-lock band at the container's left and right edges (px).
	EdgeThreshold float64 `koanf:"edge_threshold"`
	// ReconcileTimeout bounds each stage update sent to the CRM API.
	ReconcileTimeout time.Duration `koanf:"reconcile_timeout"`
	// LoadConcurrency bounds parallel per-stage fetches on reload.
	LoadConcurrency int `koanf:"load_concurrency"`
	// ReloadTimeout bounds one shared board reload.
	ReloadTimeout time.Duration `koanf:"reload_timeout"`
	// Precondition sends the drag-start stage as expected_stage.
	Precondition bool `koanf:"precondition"`
}

// EventsConfig holds server-sent events settings.
type EventsConfig struct {
	// Buffer is the per-subscriber queue length. Slow subscribers drop events.
	Buffer int `koanf:"buffer"`
	// Heartbeat is the keep-alive comment interval.
	Heartbeat time.Duration `koanf:"heartbeat"`
}

// CORSConfig holds cross-origin settings for the browser board client.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}
