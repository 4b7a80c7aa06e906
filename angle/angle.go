// SPDX-License-Identifier: MIT

// Package angle defines the two-valued angle unit used by trigonometric
// functions and by the angle-between-vectors operation.
//
// A calculator session keeps two independent Unit values: one for trig input
// and one for vector-angle output. They are separate settings, not one shared
// flag.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unit selects how angles are interpreted or reported.
type Unit int

const (
	// Degrees is the default unit: 180 per half-turn.
	Degrees Unit = iota

	// Radians: π per half-turn.
	Radians
)

// ErrUnknownUnit is returned by Parse for anything other than deg/rad spellings.
var ErrUnknownUnit = errors.New("angle: unknown unit")

// ToRadians converts x, expressed in u, to radians.
func (u Unit) ToRadians(x float64) float64 {
	if u == Degrees {
		return x * math.Pi / 180
	}

	return x
}

// FromRadians converts rad into u.
func (u Unit) FromRadians(rad float64) float64 {
	if u == Degrees {
		return rad * 180 / math.Pi
	}

	return rad
}

// Suffix is the marker appended to a displayed angle: "°" or " rad".
func (u Unit) Suffix() string {
	if u == Degrees {
		return "°"
	}

	return " rad"
}

// String returns "deg" or "rad".
func (u Unit) String() string {
	if u == Degrees {
		return "deg"
	}

	return "rad"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Degrees {
		return Radians
	}

	return Degrees
}

// Parse accepts "deg", "degrees", "rad", "radians" (case-insensitive).
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	}

	return Degrees, fmt.Errorf("%q: %w", s, ErrUnknownUnit)
}
