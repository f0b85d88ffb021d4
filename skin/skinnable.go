package skin

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
)

// Skinnable is the styling side of a control: its class, its active states,
// a table of local overrides consulted before the skin, subcontrol proxies
// and the hint transitions started by state changes.
//
// Typed setters write to the local table. Typed getters resolve an aspect
// without states against the current skin states.
type Skinnable struct {
	Editor
	Reader

	class      aspect.Class
	skin       *Skin
	local      *hints.Table
	animations *animation.Registry
	clock      func() time.Time
	logger     zerolog.Logger
	onUpdate   func(aspect.Aspect, animation.UpdateFlags)

	mu        sync.RWMutex
	states    aspect.State
	proxies   map[aspect.Subcontrol]aspect.Subcontrol
	animators map[aspect.Aspect]*animation.HintAnimator
}

// SkinnableOption configures a Skinnable.
type SkinnableOption func(*Skinnable)

// WithAnimations enables state transitions driven by r.
func WithAnimations(r *animation.Registry) SkinnableOption {
	return func(sk *Skinnable) {
		sk.animations = r
	}
}

// WithClock replaces time.Now as the start time source for transitions.
func WithClock(now func() time.Time) SkinnableOption {
	return func(sk *Skinnable) {
		sk.clock = now
	}
}

// WithUpdateHandler sets fn to be called on every frame of a transition
// with the animated aspect and what the control has to refresh.
func WithUpdateHandler(fn func(aspect.Aspect, animation.UpdateFlags)) SkinnableOption {
	return func(sk *Skinnable) {
		sk.onUpdate = fn
	}
}

// NewSkinnable creates the styling state for a control of class c.
func NewSkinnable(c aspect.Class, s *Skin, opts ...SkinnableOption) *Skinnable {
	sk := &Skinnable{
		class:     c,
		skin:      s,
		local:     hints.NewTable(),
		clock:     time.Now,
		logger:    zerolog.Nop(),
		proxies:   make(map[aspect.Subcontrol]aspect.Subcontrol),
		animators: make(map[aspect.Aspect]*animation.HintAnimator),
	}
	if s != nil {
		sk.logger = s.Logger()
	}
	for _, opt := range opts {
		opt(sk)
	}

	sk.Editor = NewEditor(sk.local)
	sk.Reader = NewReader(sk.EffectiveSkinHint)
	return sk
}

func (sk *Skinnable) Class() aspect.Class {
	return sk.class
}

func (sk *Skinnable) Skin() *Skin {
	return sk.skin
}

// SetSkin switches the skin. Running transitions are stopped.
func (sk *Skinnable) SetSkin(s *Skin) {
	sk.stopAnimators()
	sk.skin = s
}

// LocalTable returns the table of local overrides.
func (sk *Skinnable) LocalTable() *hints.Table {
	return sk.local
}

// Skinlet returns the skinlet for the control's class.
func (sk *Skinnable) Skinlet() (Skinlet, bool) {
	if sk.skin == nil {
		return nil, false
	}
	return sk.skin.Skinlet(sk.class)
}

func (sk *Skinnable) States() aspect.State {
	sk.mu.RLock()
	defer sk.mu.RUnlock()
	return sk.states
}

func (sk *Skinnable) HasState(s aspect.State) bool {
	return sk.States()&s == s
}

// SetSkinStateFlag turns a single state on or off.
func (sk *Skinnable) SetSkinStateFlag(s aspect.State, on bool) {
	states := sk.States()
	if on {
		states |= s
	} else {
		states &^= s
	}
	sk.SetSkinStates(states)
}

// SetSkinStates replaces the active states. For every hinted aspect of the
// control whose value changes and that has an animation hint under the new
// states, a transition from the old to the new value is started.
func (sk *Skinnable) SetSkinStates(states aspect.State) {
	sk.mu.Lock()
	old := sk.states
	sk.states = states
	sk.mu.Unlock()

	if old == states || sk.animations == nil || sk.skin == nil {
		return
	}
	sk.startTransitions(old, states)
}

// SetProxy makes lookups for sub fall back to proxy once sub itself has no
// hint in either table.
func (sk *Skinnable) SetProxy(sub, proxy aspect.Subcontrol) {
	sk.mu.Lock()
	defer sk.mu.Unlock()

	if sub == proxy {
		delete(sk.proxies, sub)
		return
	}
	sk.proxies[sub] = proxy
}

func (sk *Skinnable) Proxy(sub aspect.Subcontrol) (aspect.Subcontrol, bool) {
	sk.mu.RLock()
	defer sk.mu.RUnlock()
	p, ok := sk.proxies[sub]
	return p, ok
}

func (sk *Skinnable) tables() []*hints.Table {
	if sk.skin == nil {
		return []*hints.Table{sk.local}
	}
	return []*hints.Table{sk.local, sk.skin.HintTable()}
}

// ResolveSkinHint resolves a exactly as given: local table first, then the
// skin, then each proxy of the subcontrol in turn.
func (sk *Skinnable) ResolveSkinHint(a aspect.Aspect) mo.Option[hints.Entry] {
	tables := sk.tables()
	seen := map[aspect.Subcontrol]bool{}

	for {
		if e := hints.ResolveChain(a, tables...); e.IsPresent() {
			return e
		}
		seen[a.Subcontrol()] = true

		proxy, ok := sk.Proxy(a.Subcontrol())
		if !ok || seen[proxy] {
			return mo.None[hints.Entry]()
		}
		a.SetSubcontrol(proxy)
	}
}

// EffectiveSkinHint resolves a for the control. An aspect without states is
// resolved against the current skin states, and while a transition of that
// aspect runs its current value is returned.
func (sk *Skinnable) EffectiveSkinHint(a aspect.Aspect) mo.Option[hints.Value] {
	states := sk.States()
	if a.States() == aspect.NoState {
		a = a.WithStates(states)
	}

	if !a.IsAnimator() && a.States() == states {
		if anim := sk.runningAnimator(a.Stateless()); anim != nil {
			return mo.Some(anim.Value())
		}
	}

	e, ok := sk.ResolveSkinHint(a).Get()
	if !ok {
		return mo.None[hints.Value]()
	}
	return mo.Some(e.Value)
}

// IsTransitioning reports whether a transition of a is running.
func (sk *Skinnable) IsTransitioning(a aspect.Aspect) bool {
	return sk.runningAnimator(a.Stateless()) != nil
}

func (sk *Skinnable) runningAnimator(a aspect.Aspect) *animation.HintAnimator {
	sk.mu.RLock()
	anim := sk.animators[a]
	sk.mu.RUnlock()

	if anim == nil || !anim.IsRunning() {
		return nil
	}
	return anim
}

// transitionAspects lists the stateless value aspects hinted for this
// control's subcontrols in either table.
func (sk *Skinnable) transitionAspects() []aspect.Aspect {
	subs := append([]aspect.Subcontrol{aspect.Control}, sk.skin.Registry().Subcontrols(sk.class)...)

	var all []aspect.Aspect
	for _, t := range sk.tables() {
		all = append(all, t.StatelessAspects()...)
	}

	all = lo.Filter(lo.Uniq(all), func(a aspect.Aspect, _ int) bool {
		return !a.IsAnimator() && a.Type() != aspect.Flag && slices.Contains(subs, a.Subcontrol())
	})
	slices.SortFunc(all, aspect.Compare)
	return all
}

func (sk *Skinnable) startTransitions(old, states aspect.State) {
	now := sk.clock()

	for _, a := range sk.transitionAspects() {
		hint := sk.Animation(a.WithStates(states))
		if !hint.IsValid() {
			continue
		}

		from := sk.valueUnder(a, old)
		to, ok := sk.ResolveSkinHint(a.WithStates(states)).Get()
		if !ok || from.IsNone() || from.Equal(to.Value) {
			continue
		}

		anim := animation.NewHintAnimator(a, from, to.Value, hint, now)

		sk.mu.Lock()
		if prev := sk.animators[a]; prev != nil {
			prev.Stop()
		}
		sk.animators[a] = anim
		sk.mu.Unlock()

		if sk.onUpdate != nil {
			anim.OnTick(func(f animation.UpdateFlags) { sk.onUpdate(a, f) })
		}
		anim.Run(sk.animations, func() { sk.finishAnimator(a, anim) })

		sk.logger.Debug().
			Str("aspect", sk.skin.Registry().Format(sk.class, a)).
			Str("from", from.String()).
			Str("to", to.Value.String()).
			Dur("duration", hint.Duration).
			Stringer("update", hint.UpdateFor(a)).
			Msg("hint transition started")
	}
}

// valueUnder returns what the control showed for a under states, including
// a transition still in flight.
func (sk *Skinnable) valueUnder(a aspect.Aspect, states aspect.State) hints.Value {
	if anim := sk.runningAnimator(a); anim != nil {
		return anim.Value()
	}
	e, _ := sk.ResolveSkinHint(a.WithStates(states)).Get()
	return e.Value
}

func (sk *Skinnable) finishAnimator(a aspect.Aspect, anim *animation.HintAnimator) {
	sk.mu.Lock()
	defer sk.mu.Unlock()

	if sk.animators[a] == anim {
		delete(sk.animators, a)
	}
}

func (sk *Skinnable) stopAnimators() {
	sk.mu.Lock()
	defer sk.mu.Unlock()

	for a, anim := range sk.animators {
		anim.Stop()
		delete(sk.animators, a)
	}
}
