// Package skin is the facade over a theme's hint table: typed setters and
// getters, fonts, graphic filters and providers, and the skinlet registry.
package skin

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

// Skin owns one hint table and the auxiliary maps of a theme. It is built in
// a construction phase and read afterwards; mutations after that go through
// the skin itself.
type Skin struct {
	Editor
	Reader

	name     string
	registry *aspect.Registry
	table    *hints.Table
	logger   zerolog.Logger

	mu             sync.RWMutex
	fonts          map[FontRole]Font
	graphicFilters map[int]style.ColorFilter
	providers      map[string]GraphicProvider

	skinlets skinletRegistry
}

// Option configures a Skin.
type Option func(*Skin)

// WithLogger routes skin diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Skin) {
		s.logger = logger
	}
}

// WithRegistry sets the registry used for class and subcontrol lookups.
// The process-wide default registry is used otherwise.
func WithRegistry(r *aspect.Registry) Option {
	return func(s *Skin) {
		s.registry = r
	}
}

// New creates an empty skin.
func New(name string, opts ...Option) *Skin {
	s := &Skin{
		name:           name,
		registry:       aspect.Default(),
		table:          hints.NewTable(),
		logger:         zerolog.Nop(),
		fonts:          make(map[FontRole]Font),
		graphicFilters: make(map[int]style.ColorFilter),
		providers:      make(map[string]GraphicProvider),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Editor = NewEditor(s.table)
	s.Reader = NewReader(s.resolve)
	s.skinlets = newSkinletRegistry()
	s.logger = s.logger.With().Str("skin", name).Logger()
	return s
}

func (s *Skin) Name() string {
	return s.name
}

func (s *Skin) Registry() *aspect.Registry {
	return s.registry
}

// HintTable returns the skin's hint table.
func (s *Skin) HintTable() *hints.Table {
	return s.table
}

func (s *Skin) Logger() zerolog.Logger {
	return s.logger
}

func (s *Skin) resolve(a aspect.Aspect) mo.Option[hints.Value] {
	return s.table.ResolveValue(a)
}

func (s *Skin) SetGraphicFilter(role int, f style.ColorFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphicFilters[role] = f.Clone()
}

func (s *Skin) ResetGraphicFilter(role int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.graphicFilters, role)
}

// GraphicFilter returns the filter for role, the identity filter if none is
// set.
func (s *Skin) GraphicFilter(role int) style.ColorFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graphicFilters[role].Clone()
}

// GraphicFilters returns a copy of all filters by role.
func (s *Skin) GraphicFilters() map[int]style.ColorFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]style.ColorFilter, len(s.graphicFilters))
	for role, f := range s.graphicFilters {
		out[role] = f.Clone()
	}
	return out
}
