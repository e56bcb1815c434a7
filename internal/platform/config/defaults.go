package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxConns = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.url":             "postgres://localhost:5432/invoices",
		"database.max_conns":       defaultDatabaseMaxConns,
		"database.connect_timeout": "5s",

		"cache.addr":                            "localhost:6379",
		"cache.db":                              0,
		"cache.key_prefix":                      "views:",
		"cache.channel":                         "view-invalidations",
		"cache.dial_timeout":                    "5s",
		"cache.op_timeout":                      "3s",
		"cache.retry.max_attempts":              defaultRetryMaxAttempts,
		"cache.retry.initial_interval":          "100ms",
		"cache.retry.max_interval":              "2s",
		"cache.retry.multiplier":                defaultRetryMultiplier,
		"cache.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"cache.circuit_breaker.timeout":         "30s",
		"cache.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"cache.rate_limit.ops_per_second":       0,
		"cache.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
