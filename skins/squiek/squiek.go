// Package squiek is the built-in default skin: flat light panels, a blue
// accent and short color transitions.
package squiek

import (
	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/controls"
	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/style"
)

// Name is the skin name used by New.
const Name = "squiek"

// Graphic roles with a filter installed by the skin.
const (
	GraphicRoleNormal = iota
	GraphicRoleInverted
	GraphicRoleDisabled
)

// Palette holds the handful of colors the skin derives everything from.
type Palette struct {
	Base        style.Color
	Contrasted  style.Color
	Accent      style.Color
	DarkAccent  style.Color
	Highlighted style.Color
	Text        style.Color
	Disabled    style.Color
	Border      style.Color
}

// DefaultPalette returns the stock light palette.
func DefaultPalette() Palette {
	return Palette{
		Base:        style.RGB(0xf4, 0xf4, 0xf4),
		Contrasted:  style.RGB(0xe0, 0xe0, 0xe0),
		Accent:      style.RGB(0x3b, 0x82, 0xf6),
		DarkAccent:  style.RGB(0x1d, 0x4e, 0xd8),
		Highlighted: style.RGB(0x93, 0xc5, 0xfd),
		Text:        style.RGB(0x1f, 0x29, 0x37),
		Disabled:    style.RGB(0x9c, 0xa3, 0xaf),
		Border:      style.RGB(0xa0, 0xa0, 0xa0),
	}
}

// Transition is the animation applied to color changes between states.
var Transition = animation.NewHint(150, animation.InOutQuad)

// New builds the skin for the controls registered in c.
func New(c *controls.Controls, opts ...skin.Option) *skin.Skin {
	s := skin.New(Name, append([]skin.Option{skin.WithRegistry(c.Registry)}, opts...)...)
	s.SetupFonts("DejaVu Sans", -1, false)
	controls.DeclareSkinlets(s, c)

	Setup(s, c, DefaultPalette())
	return s
}

// Setup installs the hints of every standard control into s using p. It can
// be called again to switch palettes.
func Setup(s *skin.Skin, c *controls.Controls, p Palette) {
	e := editor{Skin: s, c: c, p: p}

	e.setupGraphicFilters()
	e.setupBox()
	e.setupPushButton()
	e.setupSlider()
	e.setupTextLabel()

	logger := s.Logger()
	logger.Debug().Int("hints", s.HintTable().Len()).Msg("skin setup")
}

type editor struct {
	*skin.Skin
	c *controls.Controls
	p Palette
}

func (e editor) setupGraphicFilters() {
	var inverted style.ColorFilter
	inverted.AddSubstitution(style.RGB(0, 0, 0), style.RGB(0xff, 0xff, 0xff))
	e.SetGraphicFilter(GraphicRoleInverted, inverted)

	var disabled style.ColorFilter
	disabled.AddSubstitution(style.RGB(0, 0, 0), e.p.Disabled)
	e.SetGraphicFilter(GraphicRoleDisabled, disabled)
}

func (e editor) setupBox() {
	panel := aspect.New(e.c.BoxPanel)

	e.SetGradient(panel, style.Monochrome(e.p.Base))
	e.SetBoxShape(panel, style.UniformShape(4, style.AbsoluteSize))
	e.SetBoxBorderMetrics(panel, style.UniformBorder(1, style.AbsoluteSize))
	e.SetBoxBorderColors(panel, style.UniformBorderColors(e.p.Border))
	e.SetPadding(panel, style.UniformMargins(4))
}

func (e editor) setupPushButton() {
	c := e.c
	panel := aspect.New(c.ButtonPanel)
	text := aspect.New(c.ButtonText)
	graphic := aspect.New(c.ButtonGraphic)

	e.SetGradient(panel, style.LinearGradient(style.GradientVertical, e.p.Base, e.p.Contrasted))
	e.SetGradient(panel.WithStates(c.Hovered), style.Monochrome(e.p.Highlighted))
	e.SetGradient(panel.WithStates(c.ButtonPressed), style.Monochrome(e.p.Accent))
	e.SetGradient(panel.WithStates(c.ButtonChecked), style.Monochrome(e.p.Accent))
	e.SetGradient(panel.WithStates(c.Disabled), style.Monochrome(e.p.Contrasted))

	e.SetBoxShape(panel, style.UniformShape(6, style.AbsoluteSize))
	e.SetBoxBorderMetrics(panel, style.UniformBorder(1, style.AbsoluteSize))
	e.SetBoxBorderColors(panel, style.UniformBorderColors(e.p.Border))
	e.SetBoxBorderColors(panel.WithStates(c.Focused), style.UniformBorderColors(e.p.DarkAccent))
	e.SetPadding(panel, style.Margins{Left: 12, Top: 6, Right: 12, Bottom: 6})
	e.SetSpacing(panel, 6)
	e.SetMetric(panel.Or(aspect.MinimumWidth), 64)
	e.SetMetric(panel.Or(aspect.MinimumHeight), 28)
	e.SetAnimation(panel.Or(aspect.Color), Transition)

	e.SetColor(text, e.p.Text)
	e.SetColor(text.WithStates(c.ButtonPressed), style.RGB(0xff, 0xff, 0xff))
	e.SetColor(text.WithStates(c.ButtonChecked), style.RGB(0xff, 0xff, 0xff))
	e.SetColor(text.WithStates(c.Disabled), e.p.Disabled)
	e.SetFontRole(text, skin.MediumFont)
	e.SetAlignment(text, uint(style.AlignCenter))
	e.SetAnimation(text.Or(aspect.Color), Transition)

	e.SetGraphicRole(graphic, GraphicRoleNormal)
	e.SetGraphicRole(graphic.WithStates(c.ButtonPressed), GraphicRoleInverted)
	e.SetGraphicRole(graphic.WithStates(c.Disabled), GraphicRoleDisabled)
}

func (e editor) setupSlider() {
	c := e.c
	panel := aspect.New(c.SliderPanel)
	groove := aspect.New(c.SliderGroove)
	fill := aspect.New(c.SliderFill)
	handle := aspect.New(c.SliderHandle)

	e.SetMetric(panel.Or(aspect.Size, aspect.Vertical), 32)
	e.SetPadding(panel, style.Margins{Left: 8, Right: 8})

	e.SetMetric(groove.Or(aspect.Size), 4)
	e.SetColor(groove, e.p.Contrasted)
	e.SetBoxShape(groove, style.UniformShape(100, style.RelativeSize))

	e.SetMetric(fill.Or(aspect.Size), 4)
	e.SetColor(fill, e.p.Accent)
	e.SetColor(fill.WithStates(c.Disabled), e.p.Disabled)
	e.SetBoxShape(fill, style.UniformShape(100, style.RelativeSize))

	e.SetMetric(handle.Or(aspect.Size), 20)
	e.SetColor(handle, e.p.Base)
	e.SetColor(handle.WithStates(c.Hovered), e.p.Highlighted)
	e.SetColor(handle.WithStates(c.SliderPressed), e.p.Accent)
	e.SetBoxShape(handle, style.UniformShape(100, style.RelativeSize))
	e.SetBoxBorderMetrics(handle, style.UniformBorder(1, style.AbsoluteSize))
	e.SetBoxBorderColors(handle, style.UniformBorderColors(e.p.Border))
	e.SetBoxBorderColors(handle.WithStates(c.SliderPressed), style.UniformBorderColors(e.p.DarkAccent))
	e.SetAnimation(handle.Or(aspect.Color), Transition)
}

func (e editor) setupTextLabel() {
	c := e.c
	panel := aspect.New(c.LabelPanel)
	text := aspect.New(c.LabelText)

	e.SetColor(panel, style.Transparent)
	e.SetColor(text, e.p.Text)
	e.SetColor(text.WithStates(c.Disabled), e.p.Disabled)
	e.SetFontRole(text, skin.DefaultFont)
	e.SetAlignment(text, uint(style.AlignLeft|style.AlignVCenter))
}
