// SPDX-License-Identifier: MIT

// Package telemetry carries the calculator's ambient observability: a
// zerolog logger built from LoggingConfig and a set of Prometheus collectors
// built from MetricsConfig.
//
// Metrics live in a private registry. When MetricsConfig.Enabled is false
// NewMetrics returns a no-op instance whose Record* methods do nothing and
// whose Handler answers 404.
package telemetry
