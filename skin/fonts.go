package skin

import (
	"fmt"
	"maps"
)

// FontRole selects one of the skin's fonts. Values above HugeFont are free
// for application roles.
type FontRole int

const (
	DefaultFont FontRole = iota
	TinyFont
	SmallFont
	MediumFont
	LargeFont
	HugeFont
)

func (r FontRole) String() string {
	switch r {
	case DefaultFont:
		return "default"
	case TinyFont:
		return "tiny"
	case SmallFont:
		return "small"
	case MediumFont:
		return "medium"
	case LargeFont:
		return "large"
	case HugeFont:
		return "huge"
	}
	return fmt.Sprintf("FontRole(%d)", int(r))
}

// ParseFontRole maps a role name to its FontRole.
func ParseFontRole(name string) (FontRole, bool) {
	for r := DefaultFont; r <= HugeFont; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return DefaultFont, false
}

// Font describes a font without shaping or rasterization details.
type Font struct {
	Family    string  `toml:"family" yaml:"family" validate:"required"`
	PointSize float64 `toml:"size" yaml:"size" validate:"gt=0"`
	Weight    int     `toml:"weight" yaml:"weight" validate:"gte=-1,lte=1000"`
	Italic    bool    `toml:"italic" yaml:"italic"`
}

func (f Font) String() string {
	s := fmt.Sprintf("%s %gpt", f.Family, f.PointSize)
	if f.Weight > 0 {
		s += fmt.Sprintf(" w%d", f.Weight)
	}
	if f.Italic {
		s += " italic"
	}
	return s
}

var roleSizes = map[FontRole]float64{
	DefaultFont: 12,
	TinyFont:    9,
	SmallFont:   10,
	MediumFont:  13,
	LargeFont:   20,
	HugeFont:    27,
}

// SetupFonts installs one font per standard role, all of family. A weight of
// -1 keeps the family's default weight.
func (s *Skin) SetupFonts(family string, weight int, italic bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for role, size := range roleSizes {
		s.fonts[role] = Font{Family: family, PointSize: size, Weight: weight, Italic: italic}
	}
}

func (s *Skin) SetFont(role FontRole, f Font) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts[role] = f
}

func (s *Skin) ResetFont(role FontRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fonts, role)
}

// Font returns the font of role, falling back to the default role.
func (s *Skin) Font(role FontRole) Font {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.fonts[role]; ok {
		return f
	}
	return s.fonts[DefaultFont]
}

// Fonts returns a copy of all fonts by role.
func (s *Skin) Fonts() map[FontRole]Font {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.fonts)
}
