package skin

import (
	"sync"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/style"
)

// Skinlet turns resolved hints into geometry for one control class.
type Skinlet interface {
	// SubControlRect returns the rectangle of sub inside contents for the
	// given skinnable.
	SubControlRect(sk *Skinnable, contents style.Rect, sub aspect.Subcontrol) style.Rect
}

// SkinletFactory creates the skinlet of a class for a skin.
type SkinletFactory func(*Skin) Skinlet

type skinletRegistry struct {
	mu        sync.Mutex
	factories map[aspect.Class]SkinletFactory
	instances map[aspect.Class]Skinlet
}

func newSkinletRegistry() skinletRegistry {
	return skinletRegistry{
		factories: make(map[aspect.Class]SkinletFactory),
		instances: make(map[aspect.Class]Skinlet),
	}
}

// DeclareSkinlet registers the skinlet factory for class c. Redeclaring a
// class replaces its skinlet.
func (s *Skin) DeclareSkinlet(c aspect.Class, f SkinletFactory) {
	s.skinlets.mu.Lock()
	defer s.skinlets.mu.Unlock()

	s.skinlets.factories[c] = f
	delete(s.skinlets.instances, c)
}

// Skinlet returns the skinlet for class c. Without an exact declaration the
// class hierarchy is walked toward its root and the first declared ancestor
// wins. Skinlets are created once per declaring class and shared.
func (s *Skin) Skinlet(c aspect.Class) (Skinlet, bool) {
	s.skinlets.mu.Lock()
	defer s.skinlets.mu.Unlock()

	for _, class := range s.registry.Ancestry(c) {
		f, ok := s.skinlets.factories[class]
		if !ok {
			continue
		}
		if class != c {
			s.logger.Debug().
				Str("class", s.registry.ClassName(c)).
				Str("fallback", s.registry.ClassName(class)).
				Msg("skinlet fallback")
		}

		inst, ok := s.skinlets.instances[class]
		if !ok {
			inst = f(s)
			s.skinlets.instances[class] = inst
		}
		return inst, true
	}
	return nil, false
}
