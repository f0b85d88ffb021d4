package tw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

// Parse parses a class string for subcontrol sub and returns the resulting
// hint entries in first-seen order. Later classes override earlier ones for
// the same aspect; per-edge classes (pt-2 after p-4) merge.
//
// Classes that cannot be parsed are skipped and reported in the returned
// error; the entries of all other classes are still returned.
func (p *Parser) Parse(sub aspect.Subcontrol, classStr string) ([]hints.Entry, error) {
	b := newBuilder()
	var errs []error

	for _, class := range p.expand(strings.Fields(classStr)) {
		parsed, err := p.ParseClass(class)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		a := aspect.New(sub, parsed.Placement).WithStates(parsed.States)
		if err := p.apply(b, a, parsed); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", class, err))
		}
	}

	return b.entries(), errors.Join(errs...)
}

// expand replaces custom utilities by their classes, one level deep.
func (p *Parser) expand(classes []string) []string {
	if len(p.utilities) == 0 {
		return classes
	}

	out := make([]string, 0, len(classes))
	for _, class := range classes {
		i := strings.LastIndex(class, ":")
		variants, base := class[:i+1], class[i+1:]

		expansion, ok := p.utilities[base]
		if !ok {
			out = append(out, class)
			continue
		}
		for _, c := range expansion {
			out = append(out, variants+c)
		}
	}
	return out
}

// ParseClass splits a class into variant modifiers and base utility
// "hover:pressed:bg-blue-500" → ParsedClass{States: Hovered|Pressed, BaseClass: "bg-blue-500"}
// "w-[33px]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "33px"}}
func (p *Parser) ParseClass(class string) (ParsedClass, error) {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		BaseClass: parts[len(parts)-1], // Last part is always the base utility
	}

	for _, variant := range parts[:len(parts)-1] {
		name := variant
		if alias, ok := variantAliases[variant]; ok {
			name = alias
		}

		if s, ok := p.registry.StateByName(p.class, name); ok {
			pc.States |= s
			continue
		}
		if pl, ok := aspect.ParsePlacement(variant); ok {
			pc.Placement = pl
			continue
		}
		return ParsedClass{}, fmt.Errorf("%w: %q in %q", ErrUnknownVariant, variant, class)
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc, nil
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33px]" → ArbitraryValue{Property: "w", Value: "33px"}
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-")
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// transition collects duration and easing classes of one state/placement
// combination.
type transition struct {
	duration int
	curve    animation.Curve
	update   animation.UpdateFlags
}

// builder accumulates entries so that per-edge classes merge into one
// margins value.
type builder struct {
	order       []aspect.Aspect
	values      map[aspect.Aspect]hints.Value
	transitions map[aspect.Aspect]*transition
	transOrder  []aspect.Aspect
}

func newBuilder() *builder {
	return &builder{
		values:      make(map[aspect.Aspect]hints.Value),
		transitions: make(map[aspect.Aspect]*transition),
	}
}

func (b *builder) set(a aspect.Aspect, v hints.Value) {
	if _, ok := b.values[a]; !ok {
		b.order = append(b.order, a)
	}
	b.values[a] = v
}

func (b *builder) margins(a aspect.Aspect, edges style.Edge, v float64) {
	m, _ := hints.As[style.Margins](b.values[a])
	b.set(a, hints.VariantValue(m.WithEdges(edges, v)))
}

func (b *builder) border(a aspect.Aspect, edges style.Edge, v float64) {
	bm, _ := hints.As[style.BoxBorderMetrics](b.values[a])
	bm.Widths = bm.Widths.WithEdges(edges, v)
	b.set(a, hints.VariantValue(bm))
}

func (b *builder) transition(a aspect.Aspect) *transition {
	t, ok := b.transitions[a]
	if !ok {
		t = &transition{duration: defaultDuration, curve: defaultCurve}
		b.transitions[a] = t
		b.transOrder = append(b.transOrder, a)
	}
	return t
}

func (b *builder) entries() []hints.Entry {
	for _, a := range b.transOrder {
		t := b.transitions[a]
		h := animation.NewHint(t.duration, t.curve)
		h.Update = t.update
		b.set(a.Or(aspect.Color).AsAnimator(), hints.VariantValue(h))
		b.set(a.Or(aspect.Metric).AsAnimator(), hints.VariantValue(h))
	}

	out := make([]hints.Entry, len(b.order))
	for i, a := range b.order {
		out[i] = hints.Entry{Aspect: a, Value: b.values[a]}
	}
	return out
}
