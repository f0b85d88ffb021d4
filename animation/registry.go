package animation

import (
	"sync"
	"sync/atomic"
	"time"
)

// ID uniquely identifies an animation.
type ID uint64

var nextID atomic.Uint64

func newID() ID {
	return ID(nextID.Add(1))
}

// Animation is a running transition driven by a Registry.
type Animation struct {
	id         ID
	startTime  time.Time
	duration   time.Duration
	update     func(progress float64) // Called each tick with eased progress 0-1
	onComplete func()
	easing     EasingFunc
	loop       bool
	cancelled  atomic.Bool
}

func (a *Animation) ID() ID {
	return a.id
}

// Cancel stops the animation. It is dropped on the next tick without a final
// update.
func (a *Animation) Cancel() {
	a.cancelled.Store(true)
}

func (a *Animation) IsCancelled() bool {
	return a.cancelled.Load()
}

// Options configure an animation started through Registry.Start.
type Options struct {
	Start      time.Time
	Duration   time.Duration
	Easing     EasingFunc
	Loop       bool
	OnComplete func()
}

// Registry manages active animations. It owns no clock: the caller drives it
// with Tick once per frame.
type Registry struct {
	mu         sync.RWMutex
	animations map[ID]*Animation

	// Callback when animation state changes (so a frame loop can switch modes)
	onActiveChange func(hasActive bool)
}

func NewRegistry() *Registry {
	return &Registry{
		animations: make(map[ID]*Animation),
	}
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *Registry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

// Start registers a new animation calling update with the eased progress on
// every tick. A zero start time means time.Now.
func (r *Registry) Start(opts Options, update func(progress float64)) *Animation {
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if opts.Easing == nil {
		opts.Easing = EaseOutCubic
	}

	anim := &Animation{
		id:         newID(),
		startTime:  opts.Start,
		duration:   opts.Duration,
		update:     update,
		onComplete: opts.OnComplete,
		easing:     opts.Easing,
		loop:       opts.Loop,
	}
	r.add(anim)
	return anim
}

func (r *Registry) add(anim *Animation) {
	r.mu.Lock()
	wasEmpty := len(r.animations) == 0
	r.animations[anim.id] = anim
	callback := r.onActiveChange
	r.mu.Unlock()

	// Notify if we went from no animations to having animations
	if wasEmpty && callback != nil {
		callback(true)
	}
}

// Remove unregisters an animation.
func (r *Registry) Remove(id ID) {
	r.mu.Lock()
	_, found := r.animations[id]
	delete(r.animations, id)
	isEmpty := len(r.animations) == 0
	callback := r.onActiveChange
	r.mu.Unlock()

	if found && isEmpty && callback != nil {
		callback(false)
	}
}

// HasActive returns true if there are any running animations.
func (r *Registry) HasActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations) > 0
}

// Count returns the number of active animations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations)
}

// Tick updates all animations and removes completed ones.
// Returns true if any animations are still active.
func (r *Registry) Tick(now time.Time) bool {
	type step struct {
		anim     *Animation
		progress float64
	}

	r.mu.Lock()

	var toRemove []ID
	var toComplete []*Animation
	var steps []step

	for id, anim := range r.animations {
		if anim.cancelled.Load() {
			toRemove = append(toRemove, id)
			continue
		}

		elapsed := now.Sub(anim.startTime)

		if elapsed >= anim.duration {
			if anim.loop && anim.duration > 0 {
				anim.startTime = now
				elapsed = 0
			} else {
				toRemove = append(toRemove, id)
				toComplete = append(toComplete, anim)
				// Final update at 100%
				steps = append(steps, step{anim, 1})
				continue
			}
		}

		t := float64(elapsed) / float64(anim.duration)
		t = clamp(t, 0, 1)
		steps = append(steps, step{anim, anim.easing(t)})
	}

	for _, id := range toRemove {
		delete(r.animations, id)
	}

	callback := r.onActiveChange
	r.mu.Unlock()

	// Updates run outside the lock so they may start or remove animations.
	for _, s := range steps {
		if s.anim.update != nil {
			s.anim.update(s.progress)
		}
	}

	// Call completion callbacks outside the lock
	for _, anim := range toComplete {
		if anim.onComplete != nil {
			anim.onComplete()
		}
	}

	// Updates and completions may have started new animations.
	hasActive := r.HasActive()

	// Notify if all animations finished
	if len(toRemove) > 0 && !hasActive && callback != nil {
		callback(false)
	}

	return hasActive
}

// clamp restricts a value to a range.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
