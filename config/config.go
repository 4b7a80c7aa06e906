// SPDX-License-Identifier: MIT

// Package config loads the calculator's YAML configuration and validates it
// with struct tags.
//
//	angle:
//	  trig: deg
//	  vector: rad
//	history:
//	  capacity: 20
//	logging:
//	  level: info
//	  format: console
//	  output: stderr
//	metrics:
//	  enabled: true
//	  namespace: lvcalc
//	  addr: 127.0.0.1:9102
//	display:
//	  reset_delay: 2s
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/history"
	"github.com/katalvlaran/lvcalc/telemetry"
)

// DefaultResetDelay is how long an error stays on the display after a
// division or modulo by zero before the session is cleared.
const DefaultResetDelay = 2 * time.Second

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Angle   AngleConfig             `yaml:"angle"`
	History HistoryConfig           `yaml:"history"`
	Logging telemetry.LoggingConfig `yaml:"logging"`
	Metrics telemetry.MetricsConfig `yaml:"metrics"`
	Display DisplayConfig           `yaml:"display"`
}

// AngleConfig holds the two independent angle units.
type AngleConfig struct {
	// Trig is the unit trigonometric inputs are read in.
	Trig string `yaml:"trig" validate:"oneof=deg rad"`

	// Vector is the unit the angle between two vectors is reported in.
	Vector string `yaml:"vector" validate:"oneof=deg rad"`
}

// HistoryConfig sizes the history log.
type HistoryConfig struct {
	Capacity int `yaml:"capacity" validate:"min=1,max=1000"`
}

// DisplayConfig tunes the interactive front end.
type DisplayConfig struct {
	ResetDelay time.Duration `yaml:"reset_delay" validate:"min=0"`
}

// Default returns a valid configuration: degrees for both angle units,
// 20 history entries, warn-level JSON logs on stderr, metrics off.
func Default() Config {
	return Config{
		Angle:   AngleConfig{Trig: "deg", Vector: "deg"},
		History: HistoryConfig{Capacity: history.DefaultCapacity},
		Logging: telemetry.DefaultLoggingConfig(),
		Metrics: telemetry.DefaultMetricsConfig(),
		Display: DisplayConfig{ResetDelay: DefaultResetDelay},
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse overlays YAML data on base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := base.Validate(); err != nil {
		return Config{}, err
	}

	return base, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// TrigUnit returns Angle.Trig as an angle.Unit.
func (c Config) TrigUnit() angle.Unit {
	u, _ := angle.Parse(c.Angle.Trig)

	return u
}

// VectorUnit returns Angle.Vector as an angle.Unit.
func (c Config) VectorUnit() angle.Unit {
	u, _ := angle.Parse(c.Angle.Vector)

	return u
}

// Marshal renders c as YAML, e.g. for `lvcalc config` to print the effective settings.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}
