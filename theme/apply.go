package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/style"
	"github.com/agiangrant/skinny/tw"
)

type applyOptions struct {
	logger *zerolog.Logger
}

// Option configures Apply.
type Option func(*applyOptions)

// WithLogger sets the logger used for theme diagnostics. By default the
// skin's logger is used.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *applyOptions) {
		o.logger = &logger
	}
}

// Apply installs the fonts, graphic filters and control hints of f into s.
// Entries that fail are reported in the returned error; everything else is
// applied.
func Apply(f *File, s *skin.Skin, opts ...Option) error {
	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := s.Logger()
	if o.logger != nil {
		logger = *o.logger
	}
	logger = logger.With().Str("theme", f.Name).Logger()

	var errs []error

	for name, font := range f.Fonts {
		role, ok := skin.ParseFontRole(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: font role %q", ErrInvalidTheme, name))
			continue
		}
		s.SetFont(role, font)
	}

	colors := make(map[string]style.Color, len(f.Colors))
	for name, hex := range f.Colors {
		c, err := style.ParseColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: colors.%s: %w", ErrInvalidTheme, name, err))
			continue
		}
		colors[name] = c
	}

	for _, gf := range f.GraphicFilters {
		filter, err := colorFilter(gf)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.SetGraphicFilter(gf.Role, filter)
	}

	parserOpts := []tw.Option{tw.WithColors(colors), tw.WithUtilities(f.Utilities)}
	if f.SpacingUnit > 0 {
		parserOpts = append(parserOpts, tw.WithSpacingUnit(f.SpacingUnit))
	}

	reg := s.Registry()
	names := lo.Keys(f.Controls)
	slices.Sort(names)

	applied := 0
	for _, name := range names {
		className, subName, _ := strings.Cut(name, "::")

		class, ok := reg.ClassByName(className)
		if !ok {
			logger.Warn().Str("control", name).Msg("unknown class in theme")
			errs = append(errs, fmt.Errorf("%w: unknown class %q", ErrInvalidTheme, className))
			continue
		}
		sub, ok := reg.LookupSubcontrol(class, subName)
		if !ok {
			logger.Warn().Str("control", name).Msg("unknown subcontrol in theme")
			errs = append(errs, fmt.Errorf("%w: unknown subcontrol %q", ErrInvalidTheme, name))
			continue
		}

		entries, err := tw.NewParser(reg, class, parserOpts...).Parse(sub, f.Controls[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidTheme, name, err))
		}
		s.SetHints(entries)
		applied += len(entries)
	}

	logger.Info().
		Int("fonts", len(f.Fonts)).
		Int("controls", len(names)).
		Int("hints", applied).
		Msg("theme applied")

	return errors.Join(errs...)
}

func colorFilter(gf GraphicFilter) (style.ColorFilter, error) {
	var filter style.ColorFilter
	for _, sub := range gf.Substitutions {
		from, err := style.ParseColor(sub.From)
		if err != nil {
			return filter, fmt.Errorf("%w: graphic filter %d: %w", ErrInvalidTheme, gf.Role, err)
		}
		to, err := style.ParseColor(sub.To)
		if err != nil {
			return filter, fmt.Errorf("%w: graphic filter %d: %w", ErrInvalidTheme, gf.Role, err)
		}
		filter.AddSubstitution(from, to)
	}
	return filter, nil
}

// LoadAndApply loads the theme at path and applies it to s.
func LoadAndApply(fs afero.Fs, path string, s *skin.Skin, opts ...Option) error {
	f, err := Load(fs, path)
	if err != nil {
		return err
	}
	return Apply(f, s, opts...)
}
