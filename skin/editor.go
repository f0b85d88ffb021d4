package skin

import (
	"math"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

// Editor writes typed hints into a table. Every setter completes the caller's
// partial aspect (subcontrol, states, placement) with the type and primitive
// the setter implies.
type Editor struct {
	table *hints.Table
}

func NewEditor(t *hints.Table) Editor {
	return Editor{table: t}
}

// Table returns the table the editor writes to.
func (e Editor) Table() *hints.Table {
	return e.table
}

func withType(a aspect.Aspect, t aspect.Type) aspect.Aspect {
	if a.Type() != t {
		a.SetType(t)
	}
	return a
}

func colorAspect(a aspect.Aspect) aspect.Aspect  { return withType(a, aspect.Color) }
func metricAspect(a aspect.Aspect) aspect.Aspect { return withType(a, aspect.Metric) }
func flagAspect(a aspect.Aspect) aspect.Aspect   { return withType(a, aspect.Flag) }

// SetSkinHint stores v under a exactly as given.
func (e Editor) SetSkinHint(a aspect.Aspect, v hints.Value) {
	e.table.Set(a, v)
}

// RemoveSkinHint removes the hint stored exactly under a.
func (e Editor) RemoveSkinHint(a aspect.Aspect) bool {
	return e.table.Remove(a)
}

// SetHints stores a batch of entries, as produced by a class string parser.
func (e Editor) SetHints(entries []hints.Entry) {
	e.table.SetEntries(entries)
}

func (e Editor) SetFlag(a aspect.Aspect, v uint) {
	e.table.Set(flagAspect(a), hints.FlagValue(v))
}

// SetMetric stores a metric. NaN is not a metric and is ignored.
func (e Editor) SetMetric(a aspect.Aspect, v float64) {
	if math.IsNaN(v) {
		return
	}
	e.table.Set(metricAspect(a), hints.MetricValue(v))
}

func (e Editor) SetColor(a aspect.Aspect, c style.Color) {
	e.table.Set(colorAspect(a), hints.ColorValue(c))
}

// SetGradient stores a gradient. A monochrome gradient is stored as a plain
// color.
func (e Editor) SetGradient(a aspect.Aspect, g style.Gradient) {
	if g.IsValid() && g.IsMonochrome() {
		e.SetColor(a, g.StartColor())
		return
	}
	e.table.Set(colorAspect(a), hints.VariantValue(g))
}

func (e Editor) SetMargins(a aspect.Aspect, m style.Margins) {
	e.table.Set(a.Or(aspect.Margin), hints.VariantValue(m))
}

func (e Editor) SetPadding(a aspect.Aspect, m style.Margins) {
	e.table.Set(a.Or(aspect.Padding), hints.VariantValue(m))
}

func (e Editor) SetSpacing(a aspect.Aspect, v float64) {
	e.SetMetric(a.Or(aspect.Spacing), v)
}

// SetBoxShape stores corner radii. Negative radii are clamped to zero.
func (e Editor) SetBoxShape(a aspect.Aspect, s style.BoxShapeMetrics) {
	e.table.Set(a.Or(aspect.Shape), hints.VariantValue(s.Normalized()))
}

// SetBoxBorderMetrics stores border widths. Negative widths are clamped to
// zero.
func (e Editor) SetBoxBorderMetrics(a aspect.Aspect, b style.BoxBorderMetrics) {
	e.table.Set(a.Or(aspect.Border), hints.VariantValue(b.Normalized()))
}

func (e Editor) SetBoxBorderColors(a aspect.Aspect, c style.BoxBorderColors) {
	e.table.Set(a.Or(aspect.BorderColor), hints.VariantValue(c))
}

// SetAnimation stores the animation policy for the value aspect a. An invalid
// hint removes the policy.
func (e Editor) SetAnimation(a aspect.Aspect, h animation.Hint) {
	if !h.IsValid() {
		e.table.Remove(a.AsAnimator())
		return
	}
	e.table.Set(a.AsAnimator(), hints.VariantValue(h))
}

func (e Editor) SetFontRole(a aspect.Aspect, role FontRole) {
	e.table.Set(a.Or(aspect.FontRole), hints.FlagValue(uint(role)))
}

func (e Editor) SetGraphicRole(a aspect.Aspect, role int) {
	e.table.Set(a.Or(aspect.GraphicRole), hints.FlagValue(uint(role)))
}

func (e Editor) SetAlignment(a aspect.Aspect, alignment uint) {
	e.table.Set(a.Or(aspect.Alignment), hints.FlagValue(alignment))
}
