package controls

import (
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/style"
)

// BoxSkinlet lays out a control as a panel box: the panel fills the
// contents rectangle and every other subcontrol sits inside the panel's
// border and padding.
type BoxSkinlet struct {
	controls *Controls
}

// NewBoxSkinlet returns a factory for BoxSkinlet.
func NewBoxSkinlet(c *Controls) skin.SkinletFactory {
	return func(*skin.Skin) skin.Skinlet {
		return &BoxSkinlet{controls: c}
	}
}

func (b *BoxSkinlet) SubControlRect(sk *skin.Skinnable, contents style.Rect, sub aspect.Subcontrol) style.Rect {
	panel, ok := b.controls.Panel(sk.Class())
	if !ok || sub == panel {
		return contents
	}
	return InnerRect(sk, panel, contents)
}

// InnerRect returns r minus the border and padding of panel.
func InnerRect(sk *skin.Skinnable, panel aspect.Subcontrol, r style.Rect) style.Rect {
	a := aspect.New(panel)

	border := sk.BoxBorderMetrics(a).ToAbsolute(r.Width, r.Height)
	r = r.Shrunk(border.Widths)
	return r.Shrunk(sk.Padding(a))
}

// SliderSkinlet lays out a horizontal slider: the groove and fill are
// centered vertically with the height of their Size metric, the handle is a
// square of its Size metric at the start of the groove.
type SliderSkinlet struct {
	BoxSkinlet
}

// NewSliderSkinlet returns a factory for SliderSkinlet.
func NewSliderSkinlet(c *Controls) skin.SkinletFactory {
	return func(*skin.Skin) skin.Skinlet {
		return &SliderSkinlet{BoxSkinlet{controls: c}}
	}
}

func (s *SliderSkinlet) SubControlRect(sk *skin.Skinnable, contents style.Rect, sub aspect.Subcontrol) style.Rect {
	c := s.controls
	switch sub {
	case c.SliderGroove, c.SliderFill:
		inner := InnerRect(sk, c.SliderPanel, contents)
		h := min(sk.Metric(aspect.New(sub, aspect.Size)), inner.Height)
		return style.Rect{
			X:      inner.X,
			Y:      inner.Y + (inner.Height-h)/2,
			Width:  inner.Width,
			Height: h,
		}
	case c.SliderHandle:
		inner := InnerRect(sk, c.SliderPanel, contents)
		d := min(sk.Metric(aspect.New(sub, aspect.Size)), inner.Height)
		return style.Rect{
			X:      inner.X,
			Y:      inner.Y + (inner.Height-d)/2,
			Width:  d,
			Height: d,
		}
	}
	return s.BoxSkinlet.SubControlRect(sk, contents, sub)
}

// DeclareSkinlets installs the standard skinlets in s. Classes without a
// declaration of their own fall back to the box skinlet of Control.
func DeclareSkinlets(s *skin.Skin, c *Controls) {
	s.DeclareSkinlet(c.Control, NewBoxSkinlet(c))
	s.DeclareSkinlet(c.Slider, NewSliderSkinlet(c))
}
