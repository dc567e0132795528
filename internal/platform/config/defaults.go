package config

// defaults seeds every known key so environment variables can be matched
// against it. Durations are strings, decoded by koanf like the YAML layers.
func defaults() map[string]any {
	return map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              8080,
		"server.read_timeout":      "5s",
		"server.write_timeout":     "10s",
		"server.idle_timeout":      "120s",
		"server.readiness_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		// The CMS client only matters for store.backend=cms.
		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              3,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                2.0,
		"client.circuit_breaker.max_failures":    5,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 1,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "page-template-admin",

		"store.backend": BackendMemory,
		"store.dsn":     "",

		"templates.catalog_path": "",
	}
}
