package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Cache.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.URL == "" {
		errs = append(errs, errors.New("database.url must not be empty"))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("database.connect_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (ca *CacheConfig) validate() error {
	var errs []error

	if ca.Addr == "" {
		errs = append(errs, errors.New("cache.addr must not be empty"))
	}
	if ca.Channel == "" {
		errs = append(errs, errors.New("cache.channel must not be empty"))
	}
	if ca.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("cache.retry.max_attempts must be >= 1, got %d", ca.Retry.MaxAttempts))
	}
	if ca.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("cache.retry.multiplier must be positive, got %f", ca.Retry.Multiplier))
	}
	if ca.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("cache.circuit_breaker.max_failures must be >= 1, got %d",
			ca.CircuitBreaker.MaxFailures))
	}
	if ca.RateLimit.OpsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("cache.rate_limit.ops_per_second must not be negative, got %f",
			ca.RateLimit.OpsPerSecond))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
