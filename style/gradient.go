package style

import (
	"fmt"
	"slices"
	"strings"
)

// GradientStop is a color at a position in [0, 1].
type GradientStop struct {
	Position float64
	Color    Color
}

// Orientation of a linear gradient.
type Orientation uint8

const (
	GradientHorizontal Orientation = iota
	GradientVertical
	GradientDiagonal
)

func (o Orientation) String() string {
	switch o {
	case GradientHorizontal:
		return "horizontal"
	case GradientVertical:
		return "vertical"
	case GradientDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Gradient is a linear gradient. A gradient without stops is invalid and
// renders nothing.
type Gradient struct {
	Orientation Orientation
	Stops       []GradientStop
}

// Monochrome returns a valid gradient of a single color.
func Monochrome(c Color) Gradient {
	return Gradient{
		Orientation: GradientVertical,
		Stops:       []GradientStop{{0, c}, {1, c}},
	}
}

// LinearGradient returns a two color gradient.
func LinearGradient(o Orientation, from, to Color) Gradient {
	return Gradient{
		Orientation: o,
		Stops:       []GradientStop{{0, from}, {1, to}},
	}
}

// Clone returns g with its own copy of the stops.
func (g Gradient) Clone() Gradient {
	g.Stops = slices.Clone(g.Stops)
	return g
}

// IsValid reports whether the gradient has at least two stops.
func (g Gradient) IsValid() bool {
	return len(g.Stops) >= 2
}

// IsMonochrome reports whether all stops share one color.
func (g Gradient) IsMonochrome() bool {
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Color != g.Stops[0].Color {
			return false
		}
	}
	return true
}

// IsVisible reports whether any stop has opacity.
func (g Gradient) IsVisible() bool {
	for _, s := range g.Stops {
		if s.Color.IsVisible() {
			return true
		}
	}
	return false
}

func (g Gradient) StartColor() Color {
	if !g.IsValid() {
		return Transparent
	}
	return g.Stops[0].Color
}

func (g Gradient) EndColor() Color {
	if !g.IsValid() {
		return Transparent
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Equal compares orientation and stops.
func (g Gradient) Equal(other Gradient) bool {
	return g.Orientation == other.Orientation && slices.Equal(g.Stops, other.Stops)
}

// ColorAt returns the color at position pos, interpolating between stops.
func (g Gradient) ColorAt(pos float64) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if pos <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s1, s2 := g.Stops[i-1], g.Stops[i]
		if pos <= s2.Position {
			span := s2.Position - s1.Position
			if span <= 0 {
				return s2.Color
			}
			return s1.Color.Interpolated(s2.Color, (pos-s1.Position)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// WithAlpha returns a copy with every stop's alpha replaced.
func (g Gradient) WithAlpha(a uint8) Gradient {
	out := Gradient{Orientation: g.Orientation, Stops: slices.Clone(g.Stops)}
	for i := range out.Stops {
		out.Stops[i].Color = out.Stops[i].Color.WithAlpha(a)
	}
	return out
}

// Expanded returns a copy with additional stops at positions, colored by
// this gradient.
func (g Gradient) Expanded(positions []float64) Gradient {
	merged := make([]float64, 0, len(g.Stops)+len(positions))
	for _, s := range g.Stops {
		merged = append(merged, s.Position)
	}
	merged = append(merged, positions...)
	slices.Sort(merged)
	merged = slices.Compact(merged)

	out := Gradient{Orientation: g.Orientation, Stops: make([]GradientStop, len(merged))}
	for i, pos := range merged {
		out.Stops[i] = GradientStop{Position: pos, Color: g.ColorAt(pos)}
	}
	return out
}

func (g Gradient) positions() []float64 {
	pos := make([]float64, len(g.Stops))
	for i, s := range g.Stops {
		pos[i] = s.Position
	}
	return pos
}

// Interpolated blends g toward to.
//
// Gradients with the same orientation are blended stop by stop after both
// have been expanded to the union of their stop positions. When the
// orientation differs the transition passes through a monochrome midpoint:
// the first half fades g into the average of both gradients, the second half
// fades from there into to. An invalid side is treated as to (or g) with
// zero alpha.
func (g Gradient) Interpolated(to Gradient, progress float64) Gradient {
	switch {
	case progress <= 0:
		return g
	case progress >= 1:
		return to
	}

	from := g
	if !from.IsValid() && !to.IsValid() {
		return to
	}
	if !from.IsValid() {
		from = to.WithAlpha(0)
	}
	if !to.IsValid() {
		to = from.WithAlpha(0)
	}

	if from.Orientation != to.Orientation {
		mid := Monochrome(from.ColorAt(0.5).Interpolated(to.ColorAt(0.5), 0.5))
		if progress < 0.5 {
			mid.Orientation = from.Orientation
			return from.Interpolated(mid, progress*2)
		}
		mid.Orientation = to.Orientation
		return mid.Interpolated(to, (progress-0.5)*2)
	}

	a := from.Expanded(to.positions())
	b := to.Expanded(from.positions())

	out := Gradient{Orientation: to.Orientation, Stops: make([]GradientStop, len(a.Stops))}
	for i := range a.Stops {
		out.Stops[i] = GradientStop{
			Position: a.Stops[i].Position,
			Color:    a.Stops[i].Color.Interpolated(b.Stops[i].Color, progress),
		}
	}
	return out
}

func (g Gradient) String() string {
	stops := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = fmt.Sprintf("%g:%s", s.Position, s.Color)
	}
	return fmt.Sprintf("Gradient(%s %s)", g.Orientation, strings.Join(stops, " "))
}
