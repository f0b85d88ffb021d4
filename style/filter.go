package style

import "slices"

// ColorSubstitution replaces one color of a graphic with another.
type ColorSubstitution struct {
	From Color
	To   Color
}

// ColorFilter recolors graphics: every color matching a substitution's From
// is painted with its To. The first match wins.
type ColorFilter struct {
	Substitutions []ColorSubstitution
}

// AddSubstitution appends a substitution.
func (f *ColorFilter) AddSubstitution(from, to Color) {
	f.Substitutions = append(f.Substitutions, ColorSubstitution{From: from, To: to})
}

// Clone returns f with its own copy of the substitutions.
func (f ColorFilter) Clone() ColorFilter {
	f.Substitutions = slices.Clone(f.Substitutions)
	return f
}

// IsIdentity reports whether the filter changes nothing.
func (f ColorFilter) IsIdentity() bool {
	for _, s := range f.Substitutions {
		if s.From != s.To {
			return false
		}
	}
	return true
}

// Apply maps c through the filter.
func (f ColorFilter) Apply(c Color) Color {
	for _, s := range f.Substitutions {
		if s.From == c {
			return s.To
		}
	}
	return c
}
