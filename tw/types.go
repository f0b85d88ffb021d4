// Package tw translates Tailwind-style class strings into skin hints.
//
//	"bg-gray-100 hover:bg-blue-100 pressed:bg-blue-600 p-2 rounded-md duration-150 ease-in-out"
//
// Variant prefixes select states (or a placement) of the control class the
// parser was created for; the utility after the last colon selects the hint.
package tw

import (
	"errors"
	"maps"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/style"
)

var (
	// ErrUnknownUtility is returned for classes that map to no hint.
	ErrUnknownUtility = errors.New("tw: unknown utility")

	// ErrUnknownVariant is returned for prefixes that name neither a state
	// of the class nor a placement.
	ErrUnknownVariant = errors.New("tw: unknown variant")

	// ErrInvalidValue is returned when a utility's value cannot be parsed.
	ErrInvalidValue = errors.New("tw: invalid value")
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	States         aspect.State
	Placement      aspect.Placement
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[33px]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "text", "rounded"
	Value    string // e.g., "33px", "#1da1f2", "50%"
}

// variantAliases maps Tailwind variant names to state names.
var variantAliases = map[string]string{
	"hover":    "Hovered",
	"focus":    "Focused",
	"active":   "Pressed",
	"pressed":  "Pressed",
	"disabled": "Disabled",
	"checked":  "Checked",
}

// Parser turns class strings into hint entries for one control class.
type Parser struct {
	registry    *aspect.Registry
	class       aspect.Class
	spacingUnit float64
	colors      map[string]style.Color
	utilities   map[string][]string
}

// Option configures a Parser.
type Option func(*Parser)

// WithSpacingUnit sets the pixel size of one spacing step (p-1, m-1, w-1).
// The default is 4.
func WithSpacingUnit(px float64) Option {
	return func(p *Parser) {
		p.spacingUnit = px
	}
}

// WithColors adds named colors usable wherever a palette color is accepted
// ("bg-primary"). They take precedence over the palette.
func WithColors(colors map[string]style.Color) Option {
	return func(p *Parser) {
		maps.Copy(p.colors, colors)
	}
}

// WithUtilities adds custom utilities that expand into other classes. Variant
// prefixes of a custom utility apply to every class it expands to.
func WithUtilities(utilities map[string][]string) Option {
	return func(p *Parser) {
		maps.Copy(p.utilities, utilities)
	}
}

// NewParser returns a parser resolving variants against the states of class
// in reg.
func NewParser(reg *aspect.Registry, class aspect.Class, opts ...Option) *Parser {
	p := &Parser{
		registry:    reg,
		class:       class,
		spacingUnit: 4,
		colors:      make(map[string]style.Color),
		utilities:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
