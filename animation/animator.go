package animation

import (
	"sync"
	"time"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
)

// HintAnimator blends the value of one aspect from its old to its new hint
// while a state change transition runs.
type HintAnimator struct {
	aspect aspect.Aspect
	from   hints.Value
	to     hints.Value
	hint   Hint
	start  time.Time

	mu       sync.RWMutex
	current  hints.Value
	finished bool
	anim     *Animation
	onTick   func(UpdateFlags)
}

// NewHintAnimator prepares a transition of a from one value to another.
// Values that cannot be blended jump to the new value on completion.
func NewHintAnimator(a aspect.Aspect, from, to hints.Value, hint Hint, start time.Time) *HintAnimator {
	return &HintAnimator{
		aspect:  a,
		from:    from,
		to:      to,
		hint:    hint,
		start:   start,
		current: from,
	}
}

func (h *HintAnimator) Aspect() aspect.Aspect { return h.aspect }
func (h *HintAnimator) From() hints.Value     { return h.from }
func (h *HintAnimator) To() hints.Value       { return h.to }
func (h *HintAnimator) Hint() Hint            { return h.hint }

// ValueAt returns the blended value at now without changing the animator.
func (h *HintAnimator) ValueAt(now time.Time) hints.Value {
	return h.valueAtProgress(h.hint.Progress(now.Sub(h.start)))
}

func (h *HintAnimator) valueAtProgress(progress float64) hints.Value {
	if progress >= 1 {
		return h.to
	}
	v, ok := hints.Interpolate(h.from, h.to, progress)
	if !ok {
		return h.from
	}
	return v
}

// Value returns the value of the last tick.
func (h *HintAnimator) Value() hints.Value {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// IsRunning reports whether the transition has not completed yet.
func (h *HintAnimator) IsRunning() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return !h.finished
}

// OnTick sets fn to be called after every tick with the flags of
// Hint.UpdateFor. It must be set before Run.
func (h *HintAnimator) OnTick(fn func(UpdateFlags)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTick = fn
}

// Run registers the transition with r. onDone is called once it completes.
//
// The registry may tick synchronously from its active change callback, so
// the animator lock is not held while starting.
func (h *HintAnimator) Run(r *Registry, onDone func()) *Animation {
	anim := r.Start(Options{
		Start:    h.start,
		Duration: h.hint.Duration,
		Easing:   h.hint.Curve.Func(),
		OnComplete: func() {
			h.mu.Lock()
			h.finished = true
			h.mu.Unlock()
			if onDone != nil {
				onDone()
			}
		},
	}, h.advance)

	h.mu.Lock()
	h.anim = anim
	stopped := h.finished
	h.mu.Unlock()

	if stopped {
		anim.Cancel()
	}
	return anim
}

func (h *HintAnimator) advance(progress float64) {
	v := h.valueAtProgress(progress)

	h.mu.Lock()
	h.current = v
	onTick := h.onTick
	h.mu.Unlock()

	if onTick != nil {
		onTick(h.hint.UpdateFor(h.aspect))
	}
}

// Stop cancels a running transition. The animator keeps its current value.
func (h *HintAnimator) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.anim != nil {
		h.anim.Cancel()
	}
	h.finished = true
}
