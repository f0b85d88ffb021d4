package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

func TestEasingEndpoints(t *testing.T) {
	for c := Linear; c <= OutBounce; c++ {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, 0.0, c.Value(0))
			assert.Equal(t, 1.0, c.Value(1))
			assert.Equal(t, 1.0, c.Value(3))
			assert.InDelta(t, 1.0, c.Func()(1), 1e-9)
		})
	}
}

func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		want Curve
		ok   bool
	}{
		{name: "linear", want: Linear, ok: true},
		{name: "ease", want: InOutQuad, ok: true},
		{name: "Ease-In-Out", want: InOutQuad, ok: true},
		{name: "ease-out-cubic", want: OutCubic, ok: true},
		{name: "bounce", want: OutBounce, ok: true},
		{name: "wobble", want: Linear, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurveByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Nil(t, EasingByName("wobble"))
	assert.NotNil(t, EasingByName("back"))
}

func TestHintProgress(t *testing.T) {
	h := NewHint(100, Linear)
	assert.True(t, h.IsValid())
	assert.Equal(t, 0.0, h.Progress(0))
	assert.InDelta(t, 0.25, h.Progress(25*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, h.Progress(100*time.Millisecond))
	assert.Equal(t, 1.0, h.Progress(time.Second))

	none := NewHint(-5, Linear)
	assert.False(t, none.IsValid())
	assert.Equal(t, 1.0, none.Progress(0))
	assert.Equal(t, "Animation(100ms linear)", h.String())
}

func TestUpdateFlags(t *testing.T) {
	assert.True(t, UpdateAll.Has(UpdateSize))
	assert.False(t, UpdatePosition.Has(UpdateNode))
	assert.True(t, UpdateAuto.Has(UpdateAuto))
	assert.Equal(t, "auto", UpdateAuto.String())
	assert.Equal(t, "position|size|node", UpdateAll.String())
}

func TestHintUpdateFor(t *testing.T) {
	color := aspect.New(aspect.Subcontrol(1), aspect.TextColor)
	metric := aspect.New(aspect.Subcontrol(1), aspect.Padding)

	h := NewHint(100, Linear)
	assert.Equal(t, UpdateNode, h.UpdateFor(color))
	assert.Equal(t, UpdateAll, h.UpdateFor(metric))

	h.Update = UpdateSize
	assert.Equal(t, UpdateSize, h.UpdateFor(color))
}

func TestHintAnimatorEaseInOut(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	anim := NewHintAnimator(aspect.Aspect{}, hints.MetricValue(0), hints.MetricValue(100), NewHint(150, InOutQuad), start)

	prev := -1.0
	for ms := 0; ms <= 150; ms += 10 {
		v, ok := anim.ValueAt(start.Add(time.Duration(ms) * time.Millisecond)).Metric()
		require.True(t, ok)
		assert.Greater(t, v, prev, "at %dms", ms)
		prev = v
	}

	final, _ := anim.ValueAt(start.Add(150 * time.Millisecond)).Metric()
	assert.Equal(t, 100.0, final)
	late, _ := anim.ValueAt(start.Add(time.Second)).Metric()
	assert.Equal(t, 100.0, late)
}

func TestHintAnimatorColorRun(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	from := hints.ColorValue(style.RGB(0, 0, 0))
	to := hints.ColorValue(style.RGB(200, 0, 0))

	r := NewRegistry()
	anim := NewHintAnimator(aspect.Aspect{}, from, to, NewHint(150, InOutQuad), start)

	done := false
	anim.Run(r, func() { done = true })
	require.True(t, anim.IsRunning())
	assert.True(t, anim.Value().Equal(from))

	var prev uint8
	for ms := 30; ms < 150; ms += 30 {
		require.True(t, r.Tick(start.Add(time.Duration(ms)*time.Millisecond)))
		c, ok := anim.Value().Color()
		require.True(t, ok)
		assert.Greater(t, c.R(), prev)
		prev = c.R()
	}

	assert.False(t, r.Tick(start.Add(150*time.Millisecond)))
	assert.True(t, done)
	assert.False(t, anim.IsRunning())
	assert.True(t, anim.Value().Equal(to))
}

func TestHintAnimatorOnTick(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := aspect.New(aspect.Subcontrol(1), aspect.Size)
	anim := NewHintAnimator(a, hints.MetricValue(0), hints.MetricValue(10), NewHint(100, Linear), start)

	var got []UpdateFlags
	anim.OnTick(func(f UpdateFlags) { got = append(got, f) })

	r := NewRegistry()
	anim.Run(r, nil)
	r.Tick(start.Add(50 * time.Millisecond))
	r.Tick(start.Add(100 * time.Millisecond))
	assert.Equal(t, []UpdateFlags{UpdateAll, UpdateAll}, got)
}

func TestHintAnimatorRunTickingFromActiveChange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry()
	r.OnActiveChange(func(active bool) {
		if active {
			r.Tick(start)
		}
	})

	anim := NewHintAnimator(aspect.Aspect{}, hints.MetricValue(0), hints.MetricValue(10), NewHint(100, Linear), start)

	started := make(chan struct{})
	go func() {
		anim.Run(r, nil)
		close(started)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("Run did not return while the registry ticked from its callback")
	}
	assert.True(t, anim.IsRunning())

	anim.Stop()
	assert.False(t, r.Tick(start.Add(10*time.Millisecond)))
}

func TestRegistryUpdateMayStartAnimations(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry()

	var chained *Animation
	r.Start(Options{Start: start, Duration: 10 * time.Millisecond}, func(p float64) {
		if p == 1 && chained == nil {
			chained = r.Start(Options{Start: start, Duration: time.Second}, nil)
		}
	})

	assert.True(t, r.Tick(start.Add(20*time.Millisecond)))
	require.NotNil(t, chained)
	assert.Equal(t, 1, r.Count())
}

func TestRegistryTick(t *testing.T) {
	start := time.Now()
	r := NewRegistry()

	var changes []bool
	r.OnActiveChange(func(active bool) { changes = append(changes, active) })

	var last float64
	completed := 0
	r.Start(Options{
		Start:      start,
		Duration:   100 * time.Millisecond,
		Easing:     EaseLinear,
		OnComplete: func() { completed++ },
	}, func(p float64) { last = p })

	assert.True(t, r.HasActive())
	assert.True(t, r.Tick(start.Add(50*time.Millisecond)))
	assert.InDelta(t, 0.5, last, 1e-9)

	assert.False(t, r.Tick(start.Add(120*time.Millisecond)))
	assert.Equal(t, 1.0, last)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, []bool{true, false}, changes)
}

func TestRegistryCancelAndLoop(t *testing.T) {
	start := time.Now()
	r := NewRegistry()

	calls := 0
	cancelled := r.Start(Options{Start: start, Duration: time.Second}, func(float64) { calls++ })
	looping := r.Start(Options{Start: start, Duration: 10 * time.Millisecond, Loop: true}, nil)

	cancelled.Cancel()
	assert.True(t, cancelled.IsCancelled())
	assert.True(t, r.Tick(start.Add(20*time.Millisecond)))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, r.Count())

	r.Remove(looping.ID())
	assert.False(t, r.HasActive())
}
