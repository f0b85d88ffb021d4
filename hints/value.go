// Package hints stores skin hints keyed by aspect and resolves the best
// matching hint for a set of active states.
package hints

import (
	"fmt"
	"math"
	"reflect"

	"github.com/agiangrant/skinny/style"
)

// Kind tags the payload of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindFlag
	KindMetric
	KindColor
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFlag:
		return "flag"
	case KindMetric:
		return "metric"
	case KindColor:
		return "color"
	case KindVariant:
		return "variant"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a tagged union of the payloads a hint can carry: a flag or enum
// as uint, a metric, a color, or any complex value type (gradient, margins,
// box metrics, animation hint). The zero Value is KindNone.
type Value struct {
	kind    Kind
	bits    uint64
	variant any
}

func FlagValue(v uint) Value {
	return Value{kind: KindFlag, bits: uint64(v)}
}

func MetricValue(v float64) Value {
	return Value{kind: KindMetric, bits: math.Float64bits(v)}
}

func ColorValue(c style.Color) Value {
	return Value{kind: KindColor, bits: uint64(c)}
}

// VariantValue wraps a complex value. Passing nil yields KindNone.
// Gradients and color filters are copied, so later changes to the caller's
// stops do not reach the stored value.
func VariantValue(v any) Value {
	if v == nil {
		return Value{}
	}
	return Value{kind: KindVariant, variant: cloneVariant(v)}
}

// cloneVariant copies the slice backed value types.
func cloneVariant(v any) any {
	switch t := v.(type) {
	case style.Gradient:
		return t.Clone()
	case style.ColorFilter:
		return t.Clone()
	}
	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) Flag() (uint, bool) {
	if v.kind != KindFlag {
		return 0, false
	}
	return uint(v.bits), true
}

func (v Value) Metric() (float64, bool) {
	if v.kind != KindMetric {
		return 0, false
	}
	return math.Float64frombits(v.bits), true
}

func (v Value) Color() (style.Color, bool) {
	if v.kind != KindColor {
		return style.Transparent, false
	}
	return style.Color(v.bits), true
}

// Variant returns a copy of the payload of a KindVariant value.
func (v Value) Variant() any {
	if v.variant == nil {
		return nil
	}
	return cloneVariant(v.variant)
}

// As extracts a copy of a variant payload of type T.
func As[T any](v Value) (T, bool) {
	t, ok := v.variant.(T)
	if !ok {
		return t, false
	}
	t, _ = cloneVariant(t).(T)
	return t, true
}

// Equal compares kind and payload. Variants are compared deeply.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindVariant {
		return reflect.DeepEqual(v.variant, other.variant)
	}
	return v.bits == other.bits
}

func (v Value) String() string {
	switch v.kind {
	case KindFlag:
		return fmt.Sprintf("flag(%d)", v.bits)
	case KindMetric:
		m, _ := v.Metric()
		return fmt.Sprintf("metric(%g)", m)
	case KindColor:
		return fmt.Sprintf("color(%s)", style.Color(v.bits))
	case KindVariant:
		return fmt.Sprintf("%v", v.variant)
	}
	return "none"
}

// Interpolate blends from toward to at progress in [0, 1]. It reports false
// when the two values cannot be blended; the returned value is then to.
//
// A plain color and a gradient are blended as gradients. Flags never blend.
func Interpolate(from, to Value, progress float64) (Value, bool) {
	if progress >= 1 {
		return to, true
	}

	switch {
	case from.kind == KindMetric && to.kind == KindMetric:
		a, _ := from.Metric()
		b, _ := to.Metric()
		if progress <= 0 {
			return from, true
		}
		return MetricValue(a + (b-a)*progress), true

	case from.kind == KindColor && to.kind == KindColor:
		a, _ := from.Color()
		b, _ := to.Color()
		return ColorValue(a.Interpolated(b, progress)), true

	case from.kind == KindColor || to.kind == KindColor:
		a, okA := asGradient(from)
		b, okB := asGradient(to)
		if okA && okB {
			return VariantValue(a.Interpolated(b, progress)), true
		}

	case from.kind == KindVariant && to.kind == KindVariant:
		return interpolateVariant(from.variant, to.variant, progress)
	}

	return to, false
}

func asGradient(v Value) (style.Gradient, bool) {
	if c, ok := v.Color(); ok {
		return style.Monochrome(c), true
	}
	return As[style.Gradient](v)
}

func interpolateVariant(from, to any, progress float64) (Value, bool) {
	switch a := from.(type) {
	case style.Gradient:
		if b, ok := to.(style.Gradient); ok {
			return VariantValue(a.Interpolated(b, progress)), true
		}
	case style.Margins:
		if b, ok := to.(style.Margins); ok {
			return VariantValue(a.Interpolated(b, progress)), true
		}
	case style.BoxShapeMetrics:
		if b, ok := to.(style.BoxShapeMetrics); ok {
			return VariantValue(a.Interpolated(b, progress)), true
		}
	case style.BoxBorderMetrics:
		if b, ok := to.(style.BoxBorderMetrics); ok {
			return VariantValue(a.Interpolated(b, progress)), true
		}
	case style.BoxBorderColors:
		if b, ok := to.(style.BoxBorderColors); ok {
			return VariantValue(a.Interpolated(b, progress)), true
		}
	}
	return VariantValue(to), false
}
