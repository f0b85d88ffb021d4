package animation

import (
	"fmt"
	"strings"
	"time"

	"github.com/agiangrant/skinny/aspect"
)

// UpdateFlags tell the owner of an animated hint what to refresh on every
// frame of the transition.
type UpdateFlags uint8

const (
	// UpdateAuto lets the owner decide from the aspect being animated.
	UpdateAuto UpdateFlags = 0

	UpdatePosition UpdateFlags = 1 << 0
	UpdateSize     UpdateFlags = 1 << 1
	UpdateNode     UpdateFlags = 1 << 2

	UpdateAll = UpdatePosition | UpdateSize | UpdateNode
)

func (f UpdateFlags) Has(flag UpdateFlags) bool {
	return f&flag == flag
}

func (f UpdateFlags) String() string {
	if f == UpdateAuto {
		return "auto"
	}
	var names []string
	for _, n := range []struct {
		flag UpdateFlags
		name string
	}{{UpdatePosition, "position"}, {UpdateSize, "size"}, {UpdateNode, "node"}} {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Hint is the animation policy of an aspect. It is stored in a hint table
// under the animator variant of the aspect it applies to. A hint with zero
// duration means "no transition".
type Hint struct {
	Duration time.Duration
	Curve    Curve
	Update   UpdateFlags
}

// NewHint returns a hint of ms milliseconds. Negative durations are clamped
// to zero.
func NewHint(ms int, curve Curve) Hint {
	return Hint{Duration: time.Duration(max(ms, 0)) * time.Millisecond, Curve: curve}
}

// IsValid reports whether the hint describes an actual transition.
func (h Hint) IsValid() bool {
	return h.Duration > 0
}

// UpdateFor returns what has to be refreshed while a transition of a runs.
// UpdateAuto means a repaint for colors and flags and a relayout for metrics.
func (h Hint) UpdateFor(a aspect.Aspect) UpdateFlags {
	if h.Update != UpdateAuto {
		return h.Update
	}
	if a.Type() == aspect.Metric {
		return UpdateAll
	}
	return UpdateNode
}

// Milliseconds returns the duration in whole milliseconds.
func (h Hint) Milliseconds() int64 {
	return h.Duration.Milliseconds()
}

// Progress returns the eased progress after elapsed time. An invalid hint is
// always complete.
func (h Hint) Progress(elapsed time.Duration) float64 {
	if !h.IsValid() || elapsed >= h.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return h.Curve.Value(float64(elapsed) / float64(h.Duration))
}

func (h Hint) String() string {
	return fmt.Sprintf("Animation(%dms %s)", h.Milliseconds(), h.Curve)
}
