// Package animation holds animation hints, easing curves and the tick driven
// registry that runs hint transitions.
package animation

import (
	"fmt"
	"math"
	"strings"
)

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseInCubic - stronger acceleration from zero
	EaseInCubic EasingFunc = func(t float64) float64 { return t * t * t }

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseOutBack - slight overshoot then settle
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}

	// EaseOutElastic - elastic wobble effect
	EaseOutElastic EasingFunc = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	}

	// EaseOutBounce - bouncing ball effect
	EaseOutBounce EasingFunc = func(t float64) float64 {
		n1 := 7.5625
		d1 := 2.75
		if t < 1/d1 {
			return n1 * t * t
		} else if t < 2/d1 {
			t -= 1.5 / d1
			return n1*t*t + 0.75
		} else if t < 2.5/d1 {
			t -= 2.25 / d1
			return n1*t*t + 0.9375
		} else {
			t -= 2.625 / d1
			return n1*t*t + 0.984375
		}
	}
)

// Curve names an easing function so it can be stored in a hint and compared.
type Curve uint8

const (
	Linear Curve = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	OutBack
	OutElastic
	OutBounce
)

var curves = [...]struct {
	name string
	fn   EasingFunc
}{
	Linear:     {"linear", EaseLinear},
	InQuad:     {"ease-in", EaseInQuad},
	OutQuad:    {"ease-out", EaseOutQuad},
	InOutQuad:  {"ease-in-out", EaseInOutQuad},
	InCubic:    {"ease-in-cubic", EaseInCubic},
	OutCubic:   {"ease-out-cubic", EaseOutCubic},
	InOutCubic: {"cubic", EaseInOutCubic},
	OutBack:    {"back", EaseOutBack},
	OutElastic: {"elastic", EaseOutElastic},
	OutBounce:  {"bounce", EaseOutBounce},
}

// Func returns the easing function of c. Unknown curves are linear.
func (c Curve) Func() EasingFunc {
	if int(c) >= len(curves) {
		return EaseLinear
	}
	return curves[c].fn
}

// Value evaluates the curve at t, clamped to [0, 1]. Both end points are
// exact.
func (c Curve) Value(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return c.Func()(t)
}

func (c Curve) String() string {
	if int(c) >= len(curves) {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	return curves[c].name
}

// CurveByName returns the curve for a given name.
func CurveByName(name string) (Curve, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "ease" {
		return InOutQuad, true
	}
	for i, c := range curves {
		if c.name == name {
			return Curve(i), true
		}
	}
	return Linear, false
}

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	c, ok := CurveByName(name)
	if !ok {
		return nil
	}
	return c.Func()
}
