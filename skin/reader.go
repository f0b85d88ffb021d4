package skin

import (
	"github.com/samber/mo"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

// ResolveFunc looks up the best hint for an aspect.
type ResolveFunc func(aspect.Aspect) mo.Option[hints.Value]

// Reader decodes resolved hints into typed values. Missing or mistyped hints
// yield the category default: transparent, zero, empty.
type Reader struct {
	resolve ResolveFunc
}

func NewReader(fn ResolveFunc) Reader {
	return Reader{resolve: fn}
}

// SkinHint returns the raw resolved hint for a.
func (r Reader) SkinHint(a aspect.Aspect) mo.Option[hints.Value] {
	return r.resolve(a)
}

func (r Reader) value(a aspect.Aspect) hints.Value {
	return r.resolve(a).OrEmpty()
}

func (r Reader) Flag(a aspect.Aspect) uint {
	v, _ := r.value(flagAspect(a)).Flag()
	return v
}

func (r Reader) Metric(a aspect.Aspect) float64 {
	v, _ := r.value(metricAspect(a)).Metric()
	return v
}

// Color returns the color of a. A gradient hint yields its start color.
func (r Reader) Color(a aspect.Aspect) style.Color {
	v := r.value(colorAspect(a))
	if c, ok := v.Color(); ok {
		return c
	}
	if g, ok := hints.As[style.Gradient](v); ok {
		return g.StartColor()
	}
	return style.Transparent
}

// Gradient returns the gradient of a. A color hint yields a monochrome
// gradient.
func (r Reader) Gradient(a aspect.Aspect) style.Gradient {
	v := r.value(colorAspect(a))
	if c, ok := v.Color(); ok {
		return style.Monochrome(c)
	}
	g, _ := hints.As[style.Gradient](v)
	return g
}

func (r Reader) margins(a aspect.Aspect) style.Margins {
	v := r.value(a)
	if m, ok := v.Metric(); ok {
		return style.UniformMargins(m)
	}
	m, _ := hints.As[style.Margins](v)
	return m
}

func (r Reader) Margins(a aspect.Aspect) style.Margins {
	return r.margins(a.Or(aspect.Margin))
}

func (r Reader) Padding(a aspect.Aspect) style.Margins {
	return r.margins(a.Or(aspect.Padding))
}

func (r Reader) Spacing(a aspect.Aspect) float64 {
	return r.Metric(a.Or(aspect.Spacing))
}

func (r Reader) BoxShape(a aspect.Aspect) style.BoxShapeMetrics {
	v := r.value(a.Or(aspect.Shape))
	if m, ok := v.Metric(); ok {
		return style.UniformShape(m, style.AbsoluteSize)
	}
	s, _ := hints.As[style.BoxShapeMetrics](v)
	return s
}

func (r Reader) BoxBorderMetrics(a aspect.Aspect) style.BoxBorderMetrics {
	v := r.value(a.Or(aspect.Border))
	if m, ok := v.Metric(); ok {
		return style.UniformBorder(m, style.AbsoluteSize)
	}
	b, _ := hints.As[style.BoxBorderMetrics](v)
	return b
}

func (r Reader) BoxBorderColors(a aspect.Aspect) style.BoxBorderColors {
	v := r.value(a.Or(aspect.BorderColor))
	if c, ok := v.Color(); ok {
		return style.UniformBorderColors(c)
	}
	c, _ := hints.As[style.BoxBorderColors](v)
	return c
}

// Animation returns the animation policy for the value aspect a. Without a
// policy for a's primitive, the policy of its type (sub|Color, sub|Metric)
// applies.
func (r Reader) Animation(a aspect.Aspect) animation.Hint {
	a = a.AsAnimator()
	v, ok := r.resolve(a).Get()
	if !ok && a.Primitive() != 0 {
		a.ClearPrimitive()
		v = r.value(a)
	}
	h, _ := hints.As[animation.Hint](v)
	return h
}

func (r Reader) FontRole(a aspect.Aspect) FontRole {
	v, _ := r.value(a.Or(aspect.FontRole)).Flag()
	return FontRole(v)
}

func (r Reader) GraphicRole(a aspect.Aspect) int {
	v, _ := r.value(a.Or(aspect.GraphicRole)).Flag()
	return int(v)
}

func (r Reader) Alignment(a aspect.Aspect) uint {
	v, _ := r.value(a.Or(aspect.Alignment)).Flag()
	return v
}
