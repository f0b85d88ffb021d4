package skin

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

type fixture struct {
	reg     *aspect.Registry
	control aspect.Class
	button  aspect.Class
	slider  aspect.Class
	label   aspect.Class

	panel  aspect.Subcontrol
	text   aspect.Subcontrol
	handle aspect.Subcontrol
	groove aspect.Subcontrol

	hovered aspect.State
	pressed aspect.State
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	reg := aspect.NewRegistry()
	control := reg.MustRegisterClass("Control", aspect.NoClass)
	button := reg.MustRegisterClass("PushButton", control)
	slider := reg.MustRegisterClass("Slider", control)
	label := reg.MustRegisterClass("TextLabel", control)

	return fixture{
		reg:     reg,
		control: control,
		button:  button,
		slider:  slider,
		label:   label,
		panel:   reg.MustNextSubcontrol(button, "Panel"),
		text:    reg.MustNextSubcontrol(button, "Text"),
		handle:  reg.MustNextSubcontrol(slider, "Handle"),
		groove:  reg.MustNextSubcontrol(slider, "Groove"),
		hovered: reg.MustRegisterState(control, aspect.FirstUserState, "Hovered"),
		pressed: reg.MustRegisterState(button, aspect.FirstUserState<<1, "Pressed"),
	}
}

var (
	gray = style.RGB(0x80, 0x80, 0x80)
	blue = style.RGB(0, 0, 0xFF)
	red  = style.RGB(0xFF, 0, 0)
)

func TestSkinColorScenario(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))

	bg := aspect.New(f.panel)
	s.SetColor(bg, gray)
	s.SetColor(bg.WithStates(f.pressed), blue)

	assert.Equal(t, gray, s.Color(bg))
	assert.Equal(t, blue, s.Color(bg.WithStates(f.pressed)))
	assert.Equal(t, blue, s.Color(bg.WithStates(f.pressed|f.hovered)))

	assert.True(t, s.SkinHint(aspect.New(f.handle, aspect.Color)).IsAbsent())
	assert.Equal(t, style.Transparent, s.Color(aspect.New(f.handle)))
}

func TestSkinSettersComposeAspects(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	s.SetMetric(panel.Or(aspect.Size), 40)
	s.SetPadding(panel, style.UniformMargins(4))
	s.SetPadding(panel.Or(aspect.Left), style.UniformMargins(8))
	s.SetMargins(panel, style.Margins{Left: 1, Top: 2, Right: 3, Bottom: 4})
	s.SetSpacing(panel, 6)
	s.SetBoxShape(panel, style.UniformShape(-2, style.AbsoluteSize))
	s.SetBoxBorderMetrics(panel, style.UniformBorder(1, style.AbsoluteSize))
	s.SetBoxBorderColors(panel, style.UniformBorderColors(red))
	s.SetColor(aspect.New(f.text, aspect.TextColor), blue)
	s.SetFontRole(aspect.New(f.text), LargeFont)
	s.SetGraphicRole(panel, 3)
	s.SetAlignment(aspect.New(f.text), 0x84)

	table := s.HintTable()
	assert.True(t, table.Has(aspect.New(f.panel, aspect.Size)))
	assert.True(t, table.Has(aspect.New(f.panel, aspect.Padding)))
	assert.True(t, table.Has(aspect.New(f.panel, aspect.Shape)))
	assert.True(t, table.Has(aspect.New(f.text, aspect.TextColor)))
	assert.True(t, table.Has(aspect.New(f.text, aspect.FontRole)))

	assert.Equal(t, 40.0, s.Metric(panel.Or(aspect.Size)))
	assert.Equal(t, style.UniformMargins(4), s.Padding(panel))
	assert.Equal(t, style.UniformMargins(8), s.Padding(panel.Or(aspect.Left)))
	assert.Equal(t, style.UniformMargins(4), s.Padding(panel.Or(aspect.Right)), "placement falls back")
	assert.Equal(t, style.Margins{Left: 1, Top: 2, Right: 3, Bottom: 4}, s.Margins(panel))
	assert.Equal(t, 6.0, s.Spacing(panel))
	assert.Equal(t, style.UniformShape(0, style.AbsoluteSize), s.BoxShape(panel))
	assert.Equal(t, style.UniformBorder(1, style.AbsoluteSize), s.BoxBorderMetrics(panel))
	assert.Equal(t, style.UniformBorderColors(red), s.BoxBorderColors(panel))
	assert.Equal(t, blue, s.Color(aspect.New(f.text, aspect.TextColor)))
	assert.Equal(t, style.Transparent, s.Color(aspect.New(f.text)), "text color is not the background")
	assert.Equal(t, LargeFont, s.FontRole(aspect.New(f.text)))
	assert.Equal(t, 3, s.GraphicRole(panel))
	assert.Equal(t, uint(0x84), s.Alignment(aspect.New(f.text)))
}

func TestSkinMetricShorthands(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	s.SetMetric(panel.Or(aspect.Padding), 5)
	s.SetMetric(panel.Or(aspect.Shape), 3)
	s.SetMetric(panel.Or(aspect.Border), 2)
	s.SetColor(panel.Or(aspect.BorderColor), red)

	assert.Equal(t, style.UniformMargins(5), s.Padding(panel))
	assert.Equal(t, style.UniformShape(3, style.AbsoluteSize), s.BoxShape(panel))
	assert.Equal(t, style.UniformBorder(2, style.AbsoluteSize), s.BoxBorderMetrics(panel))
	assert.Equal(t, style.UniformBorderColors(red), s.BoxBorderColors(panel))
}

func TestSkinGradient(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	g := style.LinearGradient(style.GradientVertical, red, blue)
	s.SetGradient(panel, g)
	assert.True(t, g.Equal(s.Gradient(panel)))
	assert.Equal(t, red, s.Color(panel))

	s.SetGradient(panel, style.Monochrome(gray))
	v, ok := s.HintTable().Hint(aspect.New(f.panel, aspect.Color))
	require.True(t, ok)
	assert.Equal(t, hints.KindColor, v.Kind())
	assert.True(t, style.Monochrome(gray).Equal(s.Gradient(panel)))
}

func TestSkinGradientIsCopied(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	g := style.LinearGradient(style.GradientVertical, gray, blue)
	s.SetGradient(panel, g)
	g.Stops[0].Color = red
	assert.Equal(t, gray, s.Gradient(panel).StartColor(), "changing the input leaves the table alone")

	got := s.Gradient(panel)
	got.Stops[0].Color = red
	assert.Equal(t, gray, s.Gradient(panel).StartColor(), "changing the result leaves the table alone")

	v, ok := s.HintTable().Hint(aspect.New(f.panel, aspect.Color))
	require.True(t, ok)
	stored, ok := hints.As[style.Gradient](v)
	require.True(t, ok)
	stored.Stops[1].Color = red
	assert.Equal(t, blue, s.Gradient(panel).EndColor())
}

func TestSkinGraphicFilterIsCopied(t *testing.T) {
	s := New("test")
	black := style.RGB(0, 0, 0)

	var f style.ColorFilter
	f.AddSubstitution(black, blue)
	s.SetGraphicFilter(1, f)
	f.Substitutions[0].To = red
	assert.Equal(t, blue, s.GraphicFilter(1).Apply(black))

	got := s.GraphicFilter(1)
	got.Substitutions[0].To = red
	s.GraphicFilters()[1].Substitutions[0].To = red
	assert.Equal(t, blue, s.GraphicFilter(1).Apply(black))
}

func TestSkinAnimation(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel, aspect.Color)

	s.SetAnimation(panel, animation.NewHint(150, animation.InOutQuad))
	assert.Equal(t, animation.NewHint(150, animation.InOutQuad), s.Animation(panel))
	assert.Equal(t, animation.NewHint(150, animation.InOutQuad), s.Animation(panel.WithStates(f.hovered)))
	assert.True(t, s.SkinHint(panel).IsAbsent(), "animator entries are not values")

	s.SetAnimation(panel, animation.Hint{})
	assert.False(t, s.Animation(panel).IsValid())
	assert.Equal(t, 0, s.HintTable().Len())
}

func TestSkinAnimationFallsBackToType(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	typeLevel := animation.NewHint(150, animation.InOutQuad)
	s.SetAnimation(panel.Or(aspect.Color), typeLevel)

	assert.Equal(t, typeLevel, s.Animation(panel.Or(aspect.TextColor)))
	assert.Equal(t, typeLevel, s.Animation(panel.Or(aspect.BorderColor).WithStates(f.hovered)))
	assert.False(t, s.Animation(panel.Or(aspect.Size)).IsValid(), "metrics have no policy")

	specific := animation.NewHint(40, animation.Linear)
	s.SetAnimation(panel.Or(aspect.TextColor), specific)
	assert.Equal(t, specific, s.Animation(panel.Or(aspect.TextColor)))

	sk := NewSkinnable(f.button, s)
	assert.Equal(t, typeLevel, sk.Animation(panel.Or(aspect.BorderColor)))
}

func TestSkinFonts(t *testing.T) {
	s := New("test")

	assert.Equal(t, Font{}, s.Font(LargeFont))

	s.SetupFonts("Inter", -1, false)
	assert.Equal(t, 20.0, s.Font(LargeFont).PointSize)
	assert.Equal(t, "Inter", s.Font(TinyFont).Family)

	s.SetFont(LargeFont, Font{Family: "Serif", PointSize: 30})
	assert.Equal(t, "Serif", s.Font(LargeFont).Family)

	s.ResetFont(LargeFont)
	assert.Equal(t, s.Font(DefaultFont), s.Font(LargeFont))
	assert.Len(t, s.Fonts(), 5)

	role, ok := ParseFontRole("huge")
	require.True(t, ok)
	assert.Equal(t, HugeFont, role)
}

func TestSkinGraphics(t *testing.T) {
	s := New("test")

	var f style.ColorFilter
	f.AddSubstitution(style.RGB(0, 0, 0), red)
	s.SetGraphicFilter(1, f)
	assert.Equal(t, red, s.GraphicFilter(1).Apply(style.RGB(0, 0, 0)))
	assert.True(t, s.GraphicFilter(2).IsIdentity())

	s.ResetGraphicFilter(1)
	assert.Empty(t, s.GraphicFilters())

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/icons/check.svg", []byte("<svg/>"), 0o644))

	assert.False(t, s.HasGraphicProvider())
	s.AddGraphicProvider("", NewFileProvider(fs, "/icons", ".svg"))
	assert.True(t, s.HasGraphicProvider())

	p, ok := s.GraphicProvider("")
	require.True(t, ok)
	data, err := p.Graphic("check")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	_, err = p.Graphic("missing")
	assert.ErrorIs(t, err, ErrGraphicNotFound)
	_, err = p.Graphic("../etc/passwd")
	assert.ErrorIs(t, err, ErrGraphicNotFound)
}

type namedSkinlet struct{ name string }

func (n namedSkinlet) SubControlRect(*Skinnable, style.Rect, aspect.Subcontrol) style.Rect {
	return style.Rect{}
}

func TestSkinletFallback(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))

	_, ok := s.Skinlet(f.button)
	assert.False(t, ok)

	created := 0
	s.DeclareSkinlet(f.control, func(*Skin) Skinlet {
		created++
		return namedSkinlet{"control"}
	})
	s.DeclareSkinlet(f.slider, func(*Skin) Skinlet { return namedSkinlet{"slider"} })

	sl, ok := s.Skinlet(f.slider)
	require.True(t, ok)
	assert.Equal(t, namedSkinlet{"slider"}, sl)

	sl, ok = s.Skinlet(f.button)
	require.True(t, ok)
	assert.Equal(t, namedSkinlet{"control"}, sl)

	_, _ = s.Skinlet(f.label)
	assert.Equal(t, 1, created, "skinlets are shared per declaring class")
}

func TestSkinnableLocalOverrides(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel)

	s.SetColor(panel, gray)
	s.SetColor(panel.WithStates(f.hovered), blue)

	sk := NewSkinnable(f.button, s)
	assert.Equal(t, gray, sk.Color(panel))

	sk.SetSkinStateFlag(f.hovered, true)
	assert.True(t, sk.HasState(f.hovered))
	assert.Equal(t, blue, sk.Color(panel))

	sk.SetColor(panel, red)
	assert.Equal(t, red, sk.Color(panel), "local table is consulted first")

	sk.LocalTable().Clear()
	assert.Equal(t, blue, sk.Color(panel))
	assert.Equal(t, gray, sk.Color(panel.WithStates(f.pressed)), "explicit states are used as given")
}

func TestSkinnableProxy(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))

	s.SetColor(aspect.New(f.groove), gray)
	sk := NewSkinnable(f.slider, s)

	assert.Equal(t, style.Transparent, sk.Color(aspect.New(f.handle)))

	sk.SetProxy(f.handle, f.groove)
	sk.SetProxy(f.groove, f.handle)
	assert.Equal(t, gray, sk.Color(aspect.New(f.handle)))

	e := sk.ResolveSkinHint(aspect.New(f.handle, aspect.Color)).MustGet()
	assert.Equal(t, aspect.New(f.groove, aspect.Color), e.Aspect)

	assert.True(t, sk.ResolveSkinHint(aspect.New(f.handle, aspect.Metric, aspect.Size)).IsAbsent(), "proxy cycles terminate")
}

func TestSkinnableTransition(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel, aspect.Color)

	s.SetColor(panel, style.RGB(0, 0, 0))
	s.SetColor(panel.WithStates(f.hovered), style.RGB(200, 0, 0))
	s.SetAnimation(panel, animation.NewHint(150, animation.InOutQuad))
	s.SetMetric(aspect.New(f.panel, aspect.Size), 10)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	anims := animation.NewRegistry()
	sk := NewSkinnable(f.button, s, WithAnimations(anims), WithClock(func() time.Time { return start }))

	sk.SetSkinStateFlag(f.hovered, true)
	require.True(t, sk.IsTransitioning(panel))
	assert.False(t, sk.IsTransitioning(aspect.New(f.panel, aspect.Size)), "no animation hint")
	assert.Equal(t, 1, anims.Count())
	assert.Equal(t, style.RGB(0, 0, 0), sk.Color(panel))

	var prev uint8
	for ms := 30; ms < 150; ms += 30 {
		anims.Tick(start.Add(time.Duration(ms) * time.Millisecond))
		r := sk.Color(panel).R()
		assert.Greater(t, r, prev, "at %dms", ms)
		prev = r
	}

	anims.Tick(start.Add(150 * time.Millisecond))
	assert.False(t, sk.IsTransitioning(panel))
	assert.Equal(t, style.RGB(200, 0, 0), sk.Color(panel))
	assert.False(t, anims.HasActive())
}

func TestSkinnableReportsUpdates(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	text := aspect.New(f.panel, aspect.TextColor)
	size := aspect.New(f.panel, aspect.Size)

	s.SetColor(text, gray)
	s.SetColor(text.WithStates(f.hovered), blue)
	s.SetMetric(size, 10)
	s.SetMetric(size.WithStates(f.hovered), 20)
	s.SetAnimation(aspect.New(f.panel, aspect.Color), animation.NewHint(100, animation.Linear))
	s.SetAnimation(aspect.New(f.panel, aspect.Metric), animation.NewHint(100, animation.Linear))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	anims := animation.NewRegistry()
	updates := map[aspect.Aspect]animation.UpdateFlags{}
	sk := NewSkinnable(f.button, s,
		WithAnimations(anims),
		WithClock(func() time.Time { return start }),
		WithUpdateHandler(func(a aspect.Aspect, flags animation.UpdateFlags) { updates[a] |= flags }),
	)

	sk.SetSkinStateFlag(f.hovered, true)
	require.True(t, sk.IsTransitioning(text), "text color uses the color policy of the panel")
	require.True(t, sk.IsTransitioning(size))

	anims.Tick(start.Add(50 * time.Millisecond))
	assert.Equal(t, animation.UpdateNode, updates[text])
	assert.Equal(t, animation.UpdateAll, updates[size])
}

func TestSkinnableWithoutAnimationsSwitchesInstantly(t *testing.T) {
	f := newFixture(t)
	s := New("test", WithRegistry(f.reg))
	panel := aspect.New(f.panel, aspect.Color)

	s.SetColor(panel, gray)
	s.SetColor(panel.WithStates(f.pressed), blue)
	s.SetAnimation(panel, animation.NewHint(150, animation.Linear))

	sk := NewSkinnable(f.button, s)
	sk.SetSkinStates(f.pressed)
	assert.False(t, sk.IsTransitioning(panel))
	assert.Equal(t, blue, sk.Color(panel))

	_, ok := sk.Skinlet()
	assert.False(t, ok)
}
