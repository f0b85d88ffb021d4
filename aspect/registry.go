package aspect

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var (
	// ErrCapacity is returned when the subcontrol or state bit budget is
	// exhausted. It indicates a configuration error and is fatal for setup.
	ErrCapacity = errors.New("aspect: capacity exhausted")

	// ErrDuplicate is returned when a qualified name is registered twice.
	ErrDuplicate = errors.New("aspect: duplicate registration")

	// ErrInvalidState is returned for state bits outside the permitted range
	// or already taken within the class hierarchy.
	ErrInvalidState = errors.New("aspect: invalid state")

	// ErrUnknownClass is returned when a class handle was not registered.
	ErrUnknownClass = errors.New("aspect: unknown class")
)

// Class is an opaque handle for a control class registered in a Registry.
// NoClass is the zero value and has no parent.
type Class uint16

const NoClass Class = 0

type classInfo struct {
	name   string
	parent Class

	// bits assigned by this class, user and system
	states     State
	stateNames map[State]string
}

type subcontrolInfo struct {
	name  string
	owner Class
}

// Registry allocates state bits and subcontrol ids and keeps the is-a
// relation between control classes. Registration is expected to happen in a
// setup phase before any skin or control is constructed; lookups afterwards
// are read-only.
type Registry struct {
	mu sync.RWMutex

	classes     []classInfo // index is Class-1
	classByName map[string]Class
	subcontrols []subcontrolInfo // index is the Subcontrol id
	qualified   map[string]struct{}
	bitNames    map[State][]string

	logger zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes registration diagnostics to logger.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry. Subcontrol 0 is preassigned to
// Control.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		classByName: make(map[string]Class),
		subcontrols: []subcontrolInfo{{name: "Control"}},
		qualified:   make(map[string]struct{}),
		bitNames:    make(map[State][]string),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// RegisterClass adds a control class deriving from parent (NoClass for a
// root class).
func (r *Registry) RegisterClass(name string, parent Class) (Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return NoClass, fmt.Errorf("%w: empty class name", ErrUnknownClass)
	}
	if _, ok := r.classByName[name]; ok {
		return NoClass, fmt.Errorf("%w: class %q", ErrDuplicate, name)
	}
	if parent != NoClass && !r.validLocked(parent) {
		return NoClass, fmt.Errorf("%w: parent %d of %q", ErrUnknownClass, parent, name)
	}

	r.classes = append(r.classes, classInfo{
		name:       name,
		parent:     parent,
		stateNames: make(map[State]string),
	})
	c := Class(len(r.classes))
	r.classByName[name] = c

	r.logger.Debug().Str("class", name).Uint16("id", uint16(c)).Msg("class registered")
	return c, nil
}

// MustRegisterClass is RegisterClass that panics on error.
func (r *Registry) MustRegisterClass(name string, parent Class) Class {
	return must(r.RegisterClass(name, parent))
}

func (r *Registry) validLocked(c Class) bool {
	return c != NoClass && int(c) <= len(r.classes)
}

func (r *Registry) infoLocked(c Class) *classInfo {
	if !r.validLocked(c) {
		return nil
	}
	return &r.classes[c-1]
}

// ancestryLocked returns c followed by its ancestors, closest first.
func (r *Registry) ancestryLocked(c Class) []Class {
	var chain []Class
	for c != NoClass {
		info := r.infoLocked(c)
		if info == nil {
			break
		}
		chain = append(chain, c)
		c = info.parent
	}
	return chain
}

// hierarchyStatesLocked returns all state bits assigned by c and its ancestors.
func (r *Registry) hierarchyStatesLocked(c Class) State {
	var s State
	for _, a := range r.ancestryLocked(c) {
		s |= r.classes[a-1].states
	}
	return s
}

// RegisterState reserves the user state bit candidate for class c. The bit
// must lie in the user range and must not be used by c or any of its
// ancestors.
func (r *Registry) RegisterState(c Class, candidate State, name string) (State, error) {
	if !candidate.IsSingle() || !candidate.IsUser() {
		return NoState, fmt.Errorf("%w: %#04x for %q is not a single user state bit", ErrInvalidState, uint16(candidate), name)
	}
	return r.reserveState(c, candidate, name)
}

// RegisterSystemState reserves a system state bit. System states are shared
// by every class deriving from c.
func (r *Registry) RegisterSystemState(c Class, candidate State, name string) (State, error) {
	if !candidate.IsSingle() || !candidate.IsSystem() {
		return NoState, fmt.Errorf("%w: %#04x for %q is not a single system state bit", ErrInvalidState, uint16(candidate), name)
	}
	return r.reserveState(c, candidate, name)
}

// NextState allocates the first free user bit above the highest user bit
// assigned anywhere in the hierarchy of c.
func (r *Registry) NextState(c Class, name string) (State, error) {
	r.mu.RLock()
	taken := r.hierarchyStatesLocked(c) & AllUserStates
	r.mu.RUnlock()

	next := FirstUserState
	if taken != 0 {
		next = taken.Top() << 1
	}
	if next > LastUserState || next == 0 {
		return NoState, fmt.Errorf("%w: no user state bit left for %q", ErrCapacity, name)
	}
	return r.reserveState(c, next, name)
}

func (r *Registry) reserveState(c Class, s State, name string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := r.infoLocked(c)
	if info == nil {
		return NoState, fmt.Errorf("%w: %d registering state %q", ErrUnknownClass, c, name)
	}

	qualified := info.name + "::" + name
	if _, ok := r.qualified[qualified]; ok {
		return NoState, fmt.Errorf("%w: state %q", ErrDuplicate, qualified)
	}
	if r.hierarchyStatesLocked(c)&s != 0 {
		return NoState, fmt.Errorf("%w: %#04x for %q already used in the hierarchy of %s",
			ErrInvalidState, uint16(s), name, info.name)
	}

	info.states |= s
	info.stateNames[s] = name
	r.qualified[qualified] = struct{}{}
	r.bitNames[s] = append(r.bitNames[s], qualified)

	r.logger.Debug().Str("state", qualified).Uint16("bit", uint16(s)).Msg("state registered")
	return s, nil
}

// MustRegisterState is RegisterState that panics on error.
func (r *Registry) MustRegisterState(c Class, candidate State, name string) State {
	return must(r.RegisterState(c, candidate, name))
}

// MustRegisterSystemState is RegisterSystemState that panics on error.
func (r *Registry) MustRegisterSystemState(c Class, candidate State, name string) State {
	return must(r.RegisterSystemState(c, candidate, name))
}

// MustNextState is NextState that panics on error.
func (r *Registry) MustNextState(c Class, name string) State {
	return must(r.NextState(c, name))
}

// NextSubcontrol allocates a new subcontrol id owned by c. Ids are unique in
// the registry and strictly increasing, so they always lie above anything an
// ancestor has allocated.
func (r *Registry) NextSubcontrol(c Class, name string) (Subcontrol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := r.infoLocked(c)
	if info == nil {
		return Control, fmt.Errorf("%w: %d registering subcontrol %q", ErrUnknownClass, c, name)
	}

	qualified := info.name + "::" + name
	if _, ok := r.qualified[qualified]; ok {
		return Control, fmt.Errorf("%w: subcontrol %q", ErrDuplicate, qualified)
	}

	id := len(r.subcontrols)
	if id > int(LastSubcontrol) {
		return Control, fmt.Errorf("%w: subcontrol %q exceeds %d", ErrCapacity, qualified, LastSubcontrol)
	}

	r.subcontrols = append(r.subcontrols, subcontrolInfo{name: qualified, owner: c})
	r.qualified[qualified] = struct{}{}

	r.logger.Debug().Str("subcontrol", qualified).Int("id", id).Msg("subcontrol registered")
	return Subcontrol(id), nil
}

// MustNextSubcontrol is NextSubcontrol that panics on error.
func (r *Registry) MustNextSubcontrol(c Class, name string) Subcontrol {
	return must(r.NextSubcontrol(c, name))
}

// ClassName returns the registered name of c, or "" if unknown.
func (r *Registry) ClassName(c Class) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info := r.infoLocked(c); info != nil {
		return info.name
	}
	return ""
}

// ClassByName looks up a class by its registered name.
func (r *Registry) ClassByName(name string) (Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classByName[name]
	return c, ok
}

// Parent returns the parent of c, or NoClass.
func (r *Registry) Parent(c Class) Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info := r.infoLocked(c); info != nil {
		return info.parent
	}
	return NoClass
}

// Ancestry returns c and its ancestors, most derived first.
func (r *Registry) Ancestry(c Class) []Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ancestryLocked(c)
}

// Inherits reports whether c is ancestor or derives from it.
func (r *Registry) Inherits(c, ancestor Class) bool {
	return slices.Contains(r.Ancestry(c), ancestor)
}

// States returns the state bits usable by c: its own and its ancestors'.
func (r *Registry) States(c Class) State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hierarchyStatesLocked(c)
}

// StateByName finds a state by its unqualified name, searching c first and
// then its ancestors. The match is case-insensitive.
func (r *Registry) StateByName(c Class, name string) (State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.ancestryLocked(c) {
		for s, n := range r.classes[a-1].stateNames {
			if strings.EqualFold(n, name) {
				return s, true
			}
		}
	}
	return NoState, false
}

// StateName returns the qualified name of the single bit s as seen from
// class c.
func (r *Registry) StateName(c Class, s State) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.ancestryLocked(c) {
		info := &r.classes[a-1]
		if n, ok := info.stateNames[s]; ok {
			return info.name + "::" + n
		}
	}
	if names := r.bitNames[s]; len(names) > 0 {
		return strings.Join(names, "/")
	}
	return fmt.Sprintf("State(%#04x)", uint16(s))
}

// StateNames splits mask into single bits and names each, highest bit first.
func (r *Registry) StateNames(c Class, mask State) []string {
	var names []string
	for mask != 0 {
		top := mask.Top()
		names = append(names, r.StateName(c, top))
		mask &^= top
	}
	return names
}

// SubcontrolName returns the qualified name of s.
func (r *Registry) SubcontrolName(s Subcontrol) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(s) < len(r.subcontrols) {
		return r.subcontrols[s].name
	}
	return fmt.Sprintf("Subcontrol(%d)", s)
}

// SubcontrolByName looks up a subcontrol by its qualified "Class::Name".
func (r *Registry) SubcontrolByName(qualified string) (Subcontrol, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, info := range r.subcontrols {
		if info.name == qualified {
			return Subcontrol(id), true
		}
	}
	return Control, false
}

// LookupSubcontrol finds a subcontrol by its unqualified name, searching c
// first and then its ancestors.
func (r *Registry) LookupSubcontrol(c Class, name string) (Subcontrol, bool) {
	for _, a := range r.Ancestry(c) {
		if s, ok := r.SubcontrolByName(r.ClassName(a) + "::" + name); ok {
			return s, true
		}
	}
	return Control, false
}

// Subcontrols returns the subcontrols declared by c and its ancestors in
// allocation order. With NoClass it returns every subcontrol except Control.
func (r *Registry) Subcontrols(c Class) []Subcontrol {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.ancestryLocked(c)

	var subs []Subcontrol
	for id := 1; id < len(r.subcontrols); id++ {
		if c == NoClass || slices.Contains(chain, r.subcontrols[id].owner) {
			subs = append(subs, Subcontrol(id))
		}
	}
	return subs
}

// SubcontrolNames returns the qualified names of Subcontrols(c).
func (r *Registry) SubcontrolNames(c Class) []string {
	return lo.Map(r.Subcontrols(c), func(s Subcontrol, _ int) string {
		return r.SubcontrolName(s)
	})
}

// Classes returns every registered class in registration order.
func (r *Registry) Classes() []Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Times(len(r.classes), func(i int) Class { return Class(i + 1) })
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Package-level shortcuts operating on the default registry.

func RegisterClass(name string, parent Class) (Class, error) {
	return defaultRegistry.RegisterClass(name, parent)
}

func RegisterState(c Class, candidate State, name string) (State, error) {
	return defaultRegistry.RegisterState(c, candidate, name)
}

func RegisterSystemState(c Class, candidate State, name string) (State, error) {
	return defaultRegistry.RegisterSystemState(c, candidate, name)
}

func NextSubcontrol(c Class, name string) (Subcontrol, error) {
	return defaultRegistry.NextSubcontrol(c, name)
}

func SubcontrolName(s Subcontrol) string {
	return defaultRegistry.SubcontrolName(s)
}

func SubcontrolNames(c Class) []string {
	return defaultRegistry.SubcontrolNames(c)
}
