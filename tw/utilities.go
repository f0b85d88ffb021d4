package tw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/style"
)

const (
	defaultDuration = 150
	defaultCurve    = animation.InOutQuad
)

// errNotHandled makes the dispatcher try the next, shorter prefix.
var errNotHandled = errors.New("not handled")

type utility struct {
	prefix string
	apply  func(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error
}

// Longer prefixes come first so "px" is tried before "p".
var utilities = []utility{
	{"transition", applyTransition},
	{"duration", applyDuration},
	{"ease", applyEase},
	{"rounded", applyRounded},
	{"min-w", metricUtility(aspect.MinimumWidth)},
	{"min-h", metricUtility(aspect.MinimumHeight)},
	{"max-w", metricUtility(aspect.MaximumWidth)},
	{"max-h", metricUtility(aspect.MaximumHeight)},
	{"border-t", borderEdges(style.TopEdge)},
	{"border-r", borderEdges(style.RightEdge)},
	{"border-b", borderEdges(style.BottomEdge)},
	{"border-l", borderEdges(style.LeftEdge)},
	{"border-x", borderEdges(style.LeftEdge | style.RightEdge)},
	{"border-y", borderEdges(style.TopEdge | style.BottomEdge)},
	{"border", applyBorder},
	{"gap", metricUtility(aspect.Spacing)},
	{"bg", applyBackground},
	{"text", applyText},
	{"px", edgesUtility(aspect.Padding, style.LeftEdge|style.RightEdge)},
	{"py", edgesUtility(aspect.Padding, style.TopEdge|style.BottomEdge)},
	{"pt", edgesUtility(aspect.Padding, style.TopEdge)},
	{"pr", edgesUtility(aspect.Padding, style.RightEdge)},
	{"pb", edgesUtility(aspect.Padding, style.BottomEdge)},
	{"pl", edgesUtility(aspect.Padding, style.LeftEdge)},
	{"p", edgesUtility(aspect.Padding, style.AllEdges)},
	{"mx", edgesUtility(aspect.Margin, style.LeftEdge|style.RightEdge)},
	{"my", edgesUtility(aspect.Margin, style.TopEdge|style.BottomEdge)},
	{"mt", edgesUtility(aspect.Margin, style.TopEdge)},
	{"mr", edgesUtility(aspect.Margin, style.RightEdge)},
	{"mb", edgesUtility(aspect.Margin, style.BottomEdge)},
	{"ml", edgesUtility(aspect.Margin, style.LeftEdge)},
	{"m", edgesUtility(aspect.Margin, style.AllEdges)},
	{"w", sizeUtility(aspect.Horizontal)},
	{"h", sizeUtility(aspect.Vertical)},
}

func (p *Parser) apply(b *builder, a aspect.Aspect, pc ParsedClass) error {
	if arb := pc.ArbitraryValue; arb != nil {
		for _, u := range utilities {
			if u.prefix == arb.Property {
				return u.apply(p, b, a, arb.Value, true)
			}
		}
		return fmt.Errorf("%w: %s-[...]", ErrUnknownUtility, arb.Property)
	}

	for _, u := range utilities {
		value, ok := cutPrefix(pc.BaseClass, u.prefix)
		if !ok {
			continue
		}
		err := u.apply(p, b, a, value, false)
		if errors.Is(err, errNotHandled) {
			continue
		}
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownUtility, pc.BaseClass)
}

// cutPrefix matches "prefix" and "prefix-value".
func cutPrefix(class, prefix string) (string, bool) {
	if class == prefix {
		return "", true
	}
	return strings.CutPrefix(class, prefix+"-")
}

func invalid(value string) error {
	return fmt.Errorf("%w: %q", ErrInvalidValue, value)
}

// spacing resolves a spacing scale token ("4", "0.5", "px") or an arbitrary
// dimension into pixels.
func (p *Parser) spacing(value string, arbitrary bool) (float64, error) {
	if arbitrary {
		v, _, ok := parseDimension(value)
		if !ok {
			return 0, invalid(value)
		}
		return v, nil
	}
	if value == "px" {
		return 1, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return 0, invalid(value)
	}
	return n * p.spacingUnit, nil
}

func (p *Parser) color(value string, arbitrary bool) (style.Color, error) {
	if arbitrary {
		c, err := style.ParseColor(value)
		if err != nil {
			return style.Transparent, invalid(value)
		}
		return c, nil
	}
	if c, ok := p.colors[value]; ok {
		return c, nil
	}
	c, ok := LookupColor(value)
	if !ok {
		return style.Transparent, invalid(value)
	}
	return c, nil
}

func applyBackground(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	c, err := p.color(value, arbitrary)
	if err != nil {
		return err
	}
	b.set(a.Or(aspect.Color), hints.ColorValue(c))
	return nil
}

var fontRoles = map[string]skin.FontRole{
	"xs":   skin.TinyFont,
	"sm":   skin.SmallFont,
	"base": skin.MediumFont,
	"lg":   skin.LargeFont,
	"xl":   skin.HugeFont,
}

var textAlignments = map[string]style.Alignment{
	"left":    style.AlignLeft,
	"center":  style.AlignHCenter,
	"right":   style.AlignRight,
	"justify": style.AlignJustify,
}

func applyText(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	if !arbitrary {
		if role, ok := fontRoles[value]; ok {
			b.set(a.Or(aspect.FontRole), hints.FlagValue(uint(role)))
			return nil
		}
		if align, ok := textAlignments[value]; ok {
			b.set(a.Or(aspect.Alignment), hints.FlagValue(uint(align)))
			return nil
		}
	}

	c, err := p.color(value, arbitrary)
	if err != nil {
		return err
	}
	b.set(a.Or(aspect.TextColor), hints.ColorValue(c))
	return nil
}

func edgesUtility(prim aspect.MetricPrimitive, edges style.Edge) func(*Parser, *builder, aspect.Aspect, string, bool) error {
	return func(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
		v, err := p.spacing(value, arbitrary)
		if err != nil {
			return err
		}
		b.margins(a.Or(prim), edges, v)
		return nil
	}
}

func metricUtility(prim aspect.MetricPrimitive) func(*Parser, *builder, aspect.Aspect, string, bool) error {
	return func(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
		v, err := p.spacing(value, arbitrary)
		if err != nil {
			return err
		}
		b.set(a.Or(prim), hints.MetricValue(v))
		return nil
	}
}

// sizeUtility maps w-* and h-* to the Size metric with a horizontal or
// vertical placement.
func sizeUtility(pl aspect.Placement) func(*Parser, *builder, aspect.Aspect, string, bool) error {
	return func(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
		v, err := p.spacing(value, arbitrary)
		if err != nil {
			return err
		}
		b.set(a.Or(aspect.Size, pl), hints.MetricValue(v))
		return nil
	}
}

// borderWidth parses "", "2" or an arbitrary dimension. Plain border is 1px.
func borderWidth(value string, arbitrary bool) (float64, bool) {
	if value == "" && !arbitrary {
		return 1, true
	}
	if arbitrary {
		v, _, ok := parseDimension(value)
		return v, ok
	}
	n, err := strconv.ParseFloat(value, 64)
	return n, err == nil && n >= 0
}

func applyBorder(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	if w, ok := borderWidth(value, arbitrary); ok {
		b.border(a.Or(aspect.Border), style.AllEdges, w)
		return nil
	}

	c, err := p.color(value, arbitrary)
	if err != nil {
		return err
	}
	b.set(a.Or(aspect.BorderColor), hints.ColorValue(c))
	return nil
}

func borderEdges(edges style.Edge) func(*Parser, *builder, aspect.Aspect, string, bool) error {
	return func(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
		w, ok := borderWidth(value, arbitrary)
		if !ok {
			return errNotHandled
		}
		b.border(a.Or(aspect.Border), edges, w)
		return nil
	}
}

var radii = map[string]float64{
	"":     4,
	"none": 0,
	"sm":   2,
	"md":   6,
	"lg":   8,
	"xl":   12,
	"2xl":  16,
	"3xl":  24,
}

func applyRounded(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	shape := a.Or(aspect.Shape)

	if arbitrary {
		v, percent, ok := parseDimension(value)
		if !ok {
			return invalid(value)
		}
		mode := style.AbsoluteSize
		if percent {
			mode = style.RelativeSize
		}
		b.set(shape, hints.VariantValue(style.UniformShape(v, mode)))
		return nil
	}

	if value == "full" {
		b.set(shape, hints.VariantValue(style.UniformShape(100, style.RelativeSize)))
		return nil
	}
	r, ok := radii[value]
	if !ok {
		return invalid(value)
	}
	b.set(shape, hints.VariantValue(style.UniformShape(r, style.AbsoluteSize)))
	return nil
}

func applyTransition(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	switch value {
	case "":
		b.transition(a)
		return nil
	case "colors":
		b.transition(a).update = animation.UpdateNode
		return nil
	case "all":
		b.transition(a).update = animation.UpdateAll
		return nil
	case "none":
		b.transition(a).duration = 0
		return nil
	}
	return invalid(value)
}

func applyDuration(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	var ms float64
	var ok bool
	if arbitrary {
		ms, ok = parseDuration(value)
	} else {
		n, err := strconv.Atoi(value)
		ms, ok = float64(n), err == nil && n >= 0
	}
	if !ok {
		return invalid(value)
	}
	b.transition(a).duration = int(ms)
	return nil
}

func applyEase(p *Parser, b *builder, a aspect.Aspect, value string, arbitrary bool) error {
	name := "ease-" + value
	if arbitrary || value == "linear" {
		name = value
	}
	c, ok := animation.CurveByName(name)
	if !ok {
		return invalid(value)
	}
	b.transition(a).curve = c
	return nil
}

// parseDimension parses CSS dimension values (px, %, rem, em). Percent
// values are returned as is with percent set.
func parseDimension(value string) (v float64, percent bool, ok bool) {
	value = strings.TrimSpace(value)

	multiplier := 1.0
	switch {
	case strings.HasSuffix(value, "px"):
		value = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "%"):
		value = strings.TrimSuffix(value, "%")
		percent = true
	case strings.HasSuffix(value, "rem"):
		value = strings.TrimSuffix(value, "rem")
		multiplier = 16 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		value = strings.TrimSuffix(value, "em")
		multiplier = 16
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, false
	}
	return n * multiplier, percent, true
}

// parseDuration parses duration strings like "500ms", "1s", "1.5s"
func parseDuration(value string) (float64, bool) {
	if ms, ok := strings.CutSuffix(value, "ms"); ok {
		n, err := strconv.ParseFloat(ms, 64)
		return n, err == nil && n >= 0
	}
	if sec, ok := strings.CutSuffix(value, "s"); ok {
		n, err := strconv.ParseFloat(sec, 64)
		return n * 1000, err == nil && n >= 0
	}
	return 0, false
}
