package style

import "fmt"

// SizeMode tells whether a metric is in pixels or relative to the size of
// the box it applies to (percent).
type SizeMode uint8

const (
	AbsoluteSize SizeMode = iota
	RelativeSize
)

func (m SizeMode) String() string {
	if m == RelativeSize {
		return "relative"
	}
	return "absolute"
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Edge selects one or more sides of a box.
type Edge uint8

const (
	LeftEdge Edge = 1 << iota
	TopEdge
	RightEdge
	BottomEdge

	AllEdges = LeftEdge | TopEdge | RightEdge | BottomEdge
)

// Margins holds a value per side.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// UniformMargins returns margins with the same value on every side.
func UniformMargins(v float64) Margins {
	return Margins{v, v, v, v}
}

// IsNull reports whether every side is zero.
func (m Margins) IsNull() bool {
	return m == Margins{}
}

// At returns the value of a single edge.
func (m Margins) At(e Edge) float64 {
	switch e {
	case LeftEdge:
		return m.Left
	case TopEdge:
		return m.Top
	case RightEdge:
		return m.Right
	case BottomEdge:
		return m.Bottom
	}
	return 0
}

// WithEdges returns a copy with v set on every edge in edges.
func (m Margins) WithEdges(edges Edge, v float64) Margins {
	if edges&LeftEdge != 0 {
		m.Left = v
	}
	if edges&TopEdge != 0 {
		m.Top = v
	}
	if edges&RightEdge != 0 {
		m.Right = v
	}
	if edges&BottomEdge != 0 {
		m.Bottom = v
	}
	return m
}

func (m Margins) Width() float64  { return m.Left + m.Right }
func (m Margins) Height() float64 { return m.Top + m.Bottom }

// Interpolated blends m toward to.
func (m Margins) Interpolated(to Margins, progress float64) Margins {
	switch {
	case progress <= 0:
		return m
	case progress >= 1:
		return to
	}
	return Margins{
		Left:   lerp(m.Left, to.Left, progress),
		Top:    lerp(m.Top, to.Top, progress),
		Right:  lerp(m.Right, to.Right, progress),
		Bottom: lerp(m.Bottom, to.Bottom, progress),
	}
}

func (m Margins) String() string {
	return fmt.Sprintf("Margins(%g %g %g %g)", m.Left, m.Top, m.Right, m.Bottom)
}

// BoxShapeMetrics holds the corner radii of a box.
type BoxShapeMetrics struct {
	TopLeft, TopRight, BottomLeft, BottomRight float64
	SizeMode                                   SizeMode
}

// UniformShape returns a shape with the same radius on every corner.
func UniformShape(radius float64, mode SizeMode) BoxShapeMetrics {
	return BoxShapeMetrics{radius, radius, radius, radius, mode}
}

// IsRectangle reports whether every radius is zero.
func (s BoxShapeMetrics) IsRectangle() bool {
	return s.TopLeft == 0 && s.TopRight == 0 && s.BottomLeft == 0 && s.BottomRight == 0
}

// Normalized clamps negative radii to zero.
func (s BoxShapeMetrics) Normalized() BoxShapeMetrics {
	s.TopLeft = max(s.TopLeft, 0)
	s.TopRight = max(s.TopRight, 0)
	s.BottomLeft = max(s.BottomLeft, 0)
	s.BottomRight = max(s.BottomRight, 0)
	return s
}

// ToAbsolute converts relative radii (percent of the shorter side) into
// pixels for a box of size w x h.
func (s BoxShapeMetrics) ToAbsolute(w, h float64) BoxShapeMetrics {
	if s.SizeMode != RelativeSize {
		return s
	}
	f := min(w, h) / 100
	return BoxShapeMetrics{
		TopLeft:     s.TopLeft * f,
		TopRight:    s.TopRight * f,
		BottomLeft:  s.BottomLeft * f,
		BottomRight: s.BottomRight * f,
		SizeMode:    AbsoluteSize,
	}
}

// Interpolated blends s toward to. Shapes with different size modes cannot
// be blended; the result is to.
func (s BoxShapeMetrics) Interpolated(to BoxShapeMetrics, progress float64) BoxShapeMetrics {
	switch {
	case progress <= 0:
		return s
	case progress >= 1 || s.SizeMode != to.SizeMode:
		return to
	}
	return BoxShapeMetrics{
		TopLeft:     lerp(s.TopLeft, to.TopLeft, progress),
		TopRight:    lerp(s.TopRight, to.TopRight, progress),
		BottomLeft:  lerp(s.BottomLeft, to.BottomLeft, progress),
		BottomRight: lerp(s.BottomRight, to.BottomRight, progress),
		SizeMode:    to.SizeMode,
	}
}

// BoxBorderMetrics holds the border width per side.
type BoxBorderMetrics struct {
	Widths   Margins
	SizeMode SizeMode
}

// UniformBorder returns border metrics with the same width on every side.
func UniformBorder(width float64, mode SizeMode) BoxBorderMetrics {
	return BoxBorderMetrics{Widths: UniformMargins(width), SizeMode: mode}
}

func (b BoxBorderMetrics) IsNull() bool {
	return b.Widths.IsNull()
}

// Normalized clamps negative widths to zero.
func (b BoxBorderMetrics) Normalized() BoxBorderMetrics {
	b.Widths = Margins{
		Left:   max(b.Widths.Left, 0),
		Top:    max(b.Widths.Top, 0),
		Right:  max(b.Widths.Right, 0),
		Bottom: max(b.Widths.Bottom, 0),
	}
	return b
}

// ToAbsolute converts relative widths (percent of the box side they sit on)
// into pixels for a box of size w x h.
func (b BoxBorderMetrics) ToAbsolute(w, h float64) BoxBorderMetrics {
	if b.SizeMode != RelativeSize {
		return b
	}
	return BoxBorderMetrics{
		Widths: Margins{
			Left:   b.Widths.Left * w / 100,
			Top:    b.Widths.Top * h / 100,
			Right:  b.Widths.Right * w / 100,
			Bottom: b.Widths.Bottom * h / 100,
		},
		SizeMode: AbsoluteSize,
	}
}

// Interpolated blends b toward to. Different size modes jump to to.
func (b BoxBorderMetrics) Interpolated(to BoxBorderMetrics, progress float64) BoxBorderMetrics {
	switch {
	case progress <= 0:
		return b
	case progress >= 1 || b.SizeMode != to.SizeMode:
		return to
	}
	return BoxBorderMetrics{
		Widths:   b.Widths.Interpolated(to.Widths, progress),
		SizeMode: to.SizeMode,
	}
}

// BoxBorderColors holds a border color per side.
type BoxBorderColors struct {
	Left, Top, Right, Bottom Color
}

// UniformBorderColors returns the same color on every side.
func UniformBorderColors(c Color) BoxBorderColors {
	return BoxBorderColors{c, c, c, c}
}

// IsVisible reports whether any side has opacity.
func (b BoxBorderColors) IsVisible() bool {
	return b.Left.IsVisible() || b.Top.IsVisible() || b.Right.IsVisible() || b.Bottom.IsVisible()
}

// Interpolated blends b toward to.
func (b BoxBorderColors) Interpolated(to BoxBorderColors, progress float64) BoxBorderColors {
	return BoxBorderColors{
		Left:   b.Left.Interpolated(to.Left, progress),
		Top:    b.Top.Interpolated(to.Top, progress),
		Right:  b.Right.Interpolated(to.Right, progress),
		Bottom: b.Bottom.Interpolated(to.Bottom, progress),
	}
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Shrunk returns r with m taken off each side. Width and height never go
// negative.
func (r Rect) Shrunk(m Margins) Rect {
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  max(r.Width-m.Width(), 0),
		Height: max(r.Height-m.Height(), 0),
	}
}

func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
