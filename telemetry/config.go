// SPDX-License-Identifier: MIT

package telemetry

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`

	// Format is "json" or "console".
	Format string `yaml:"format" validate:"oneof=json console"`

	// Output is stdout, stderr or a file path.
	Output string `yaml:"output" validate:"required"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`

	// Addr is the listen address for the /metrics endpoint; empty disables
	// serving even when Enabled is set.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// DefaultLoggingConfig logs warnings and above as JSON to stderr.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "warn", Format: "json", Output: "stderr"}
}

// DefaultMetricsConfig returns a disabled configuration under the "lvcalc" namespace.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{Namespace: "lvcalc"}
}
