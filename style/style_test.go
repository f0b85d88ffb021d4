package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "#fff", want: 0xFFFFFFFF},
		{input: "#0ea5", want: 0x00EEAA55},
		{input: "TRANSPARENT", want: Transparent},
		{input: "#3b82f6", want: 0x3B82F6FF},
		{input: "#3b82f680", want: 0x3B82F680},
		{input: " #000000 ", want: 0x000000FF},
		{input: "transparent", want: Transparent},
		{input: "3b82f6", wantErr: true},
		{input: "#12345", wantErr: true},
		{input: "#1234567", wantErr: true},
		{input: "blue", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, Color(0x11223344), c)
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
	assert.Equal(t, Color(0x112233FF), c.WithAlpha(0xFF))
	assert.Equal(t, "#112233", RGB(0x11, 0x22, 0x33).String())
	assert.Equal(t, "#11223344", c.String())
	assert.False(t, Transparent.IsVisible())
}

func TestColorInterpolated(t *testing.T) {
	from := RGB(0, 0, 0)
	to := RGB(200, 100, 50)

	assert.Equal(t, from, from.Interpolated(to, 0))
	assert.Equal(t, to, from.Interpolated(to, 1))
	assert.Equal(t, RGB(100, 50, 25), from.Interpolated(to, 0.5))
	assert.Equal(t, to, from.Interpolated(to, 1.7), "progress is clamped")

	prev := from.R()
	for i := 1; i < 10; i++ {
		r := from.Interpolated(to, float64(i)/10).R()
		assert.Greater(t, r, prev)
		prev = r
	}
}

func TestGradientColorAt(t *testing.T) {
	g := Gradient{
		Orientation: GradientHorizontal,
		Stops: []GradientStop{
			{Position: 0, Color: RGB(0, 0, 0)},
			{Position: 0.5, Color: RGB(100, 0, 0)},
			{Position: 1, Color: RGB(100, 100, 0)},
		},
	}

	assert.Equal(t, RGB(0, 0, 0), g.ColorAt(-1))
	assert.Equal(t, RGB(50, 0, 0), g.ColorAt(0.25))
	assert.Equal(t, RGB(100, 50, 0), g.ColorAt(0.75))
	assert.Equal(t, RGB(100, 100, 0), g.ColorAt(2))
	assert.Equal(t, Transparent, Gradient{}.ColorAt(0.5))
}

func TestGradientInterpolatedSameOrientation(t *testing.T) {
	from := LinearGradient(GradientVertical, RGB(0, 0, 0), RGB(0, 0, 0))
	to := Gradient{
		Orientation: GradientVertical,
		Stops: []GradientStop{
			{Position: 0, Color: RGB(200, 0, 0)},
			{Position: 0.5, Color: RGB(0, 200, 0)},
			{Position: 1, Color: RGB(0, 0, 200)},
		},
	}

	mid := from.Interpolated(to, 0.5)
	require.Len(t, mid.Stops, 3)
	assert.Equal(t, RGB(100, 0, 0), mid.Stops[0].Color)
	assert.Equal(t, RGB(0, 100, 0), mid.Stops[1].Color)
	assert.Equal(t, RGB(0, 0, 100), mid.Stops[2].Color)

	assert.True(t, to.Equal(from.Interpolated(to, 1)))
	assert.True(t, from.Equal(from.Interpolated(to, 0)))
}

func TestGradientInterpolatedOrientationChange(t *testing.T) {
	from := LinearGradient(GradientHorizontal, RGB(0, 0, 0), RGB(0, 0, 0))
	to := LinearGradient(GradientVertical, RGB(200, 200, 200), RGB(200, 200, 200))

	first := from.Interpolated(to, 0.25)
	assert.Equal(t, GradientHorizontal, first.Orientation)

	second := from.Interpolated(to, 0.75)
	assert.Equal(t, GradientVertical, second.Orientation)
	assert.Greater(t, second.StartColor().R(), first.StartColor().R())
}

func TestGradientInterpolatedFromInvalid(t *testing.T) {
	to := Monochrome(RGB(10, 20, 30))
	mid := Gradient{}.Interpolated(to, 0.5)

	require.True(t, mid.IsValid())
	assert.Equal(t, uint8(10), mid.StartColor().R())
	assert.Equal(t, uint8(0x80), mid.StartColor().A())
	assert.True(t, mid.IsMonochrome())
}

func TestMarginsInterpolated(t *testing.T) {
	from := UniformMargins(0)
	to := Margins{Left: 10, Top: 20, Right: 30, Bottom: 40}

	assert.Equal(t, Margins{5, 10, 15, 20}, from.Interpolated(to, 0.5))
	assert.Equal(t, to, from.Interpolated(to, 1))
	assert.Equal(t, 40.0, to.Width())
	assert.Equal(t, 60.0, to.Height())
	assert.Equal(t, Margins{1, 0, 1, 0}, Margins{}.WithEdges(LeftEdge|RightEdge, 1))
	assert.Equal(t, 20.0, to.At(TopEdge))
}

func TestBoxShapeInterpolated(t *testing.T) {
	from := UniformShape(0, AbsoluteSize)
	to := UniformShape(8, AbsoluteSize)

	assert.Equal(t, UniformShape(4, AbsoluteSize), from.Interpolated(to, 0.5))
	assert.Equal(t, UniformShape(50, RelativeSize), from.Interpolated(UniformShape(50, RelativeSize), 0.3))

	rel := UniformShape(50, RelativeSize).ToAbsolute(40, 20)
	assert.Equal(t, UniformShape(10, AbsoluteSize), rel)
	assert.Equal(t, UniformShape(0, AbsoluteSize), UniformShape(-3, AbsoluteSize).Normalized())
	assert.True(t, from.IsRectangle())
}

func TestBoxBorderInterpolated(t *testing.T) {
	from := UniformBorder(1, AbsoluteSize)
	to := UniformBorder(3, AbsoluteSize)
	assert.Equal(t, UniformBorder(2, AbsoluteSize), from.Interpolated(to, 0.5))

	colors := UniformBorderColors(RGB(0, 0, 0)).Interpolated(UniformBorderColors(RGB(100, 0, 0)), 0.5)
	assert.Equal(t, UniformBorderColors(RGB(50, 0, 0)), colors)
	assert.True(t, colors.IsVisible())

	abs := BoxBorderMetrics{Widths: Margins{10, 10, 10, 10}, SizeMode: RelativeSize}.ToAbsolute(200, 50)
	assert.Equal(t, Margins{20, 5, 20, 5}, abs.Widths)
}

func TestRectShrunk(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	assert.Equal(t, Rect{X: 5, Y: 10, Width: 90, Height: 30}, r.Shrunk(Margins{5, 10, 5, 10}))
	assert.True(t, r.Shrunk(UniformMargins(60)).IsEmpty())
}

func TestColorFilter(t *testing.T) {
	var f ColorFilter
	assert.True(t, f.IsIdentity())

	f.AddSubstitution(RGB(0, 0, 0), RGB(255, 0, 0))
	assert.False(t, f.IsIdentity())
	assert.Equal(t, RGB(255, 0, 0), f.Apply(RGB(0, 0, 0)))
	assert.Equal(t, RGB(1, 1, 1), f.Apply(RGB(1, 1, 1)))
}
