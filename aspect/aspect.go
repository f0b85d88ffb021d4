// Package aspect implements the composite style key used by skins.
//
// An Aspect packs a subcontrol, a value type with its primitive, a placement,
// an animator flag and a set of interaction states into one uint64. Keys are
// compared and ordered by that raw value, so they can be used directly as map
// keys or in ordered containers.
//
// Bit layout:
//
//	 0-11  subcontrol
//	12-13  type (Flag, Metric, Color)
//	   14  reserved
//	   15  animator
//	16-22  primitive, interpreted against the type
//	23-25  placement
//	26-31  reserved
//	32-47  states
//	48-63  reserved
package aspect

import (
	"cmp"
	"math/bits"
)

// Subcontrol identifies a logical region of a control. Control (0) is the
// control itself.
type Subcontrol uint16

const (
	Control        Subcontrol = 0
	LastSubcontrol Subcontrol = 1<<12 - 1
)

// Type is the value category of an aspect.
type Type uint8

const (
	Flag Type = iota
	Metric
	Color
)

// LastType is the highest valid Type.
const LastType = Color

// FlagPrimitive refines the Flag type.
type FlagPrimitive uint8

const (
	NoFlagPrimitive FlagPrimitive = iota
	Alignment
	Direction
	Style
	SizeMode
	Decoration
	GraphicRole
	FontRole
)

// MetricPrimitive refines the Metric type.
type MetricPrimitive uint8

const (
	NoMetricPrimitive MetricPrimitive = iota
	Size
	Position
	MinimumWidth
	MinimumHeight
	MaximumWidth
	MaximumHeight
	Margin
	Padding
	Shadow
	Spacing
	Shape
	Border
)

// ColorPrimitive refines the Color type.
type ColorPrimitive uint8

const (
	NoColorPrimitive ColorPrimitive = iota
	TextColor
	StyleColor
	LinkColor
	BorderColor
)

// LastPrimitive is the highest primitive value that fits the key.
const LastPrimitive = 1<<7 - 1

// Placement selects a directional variant of an aspect.
type Placement uint8

const (
	NoPlacement Placement = iota
	Vertical
	Horizontal
	Top
	Left
	Right
	Bottom
)

// State is a set of interaction state bits. Bits 4-11 are the user range,
// assigned per control class; the remaining bits are system states shared by
// all classes.
type State uint16

const (
	NoState State = 0

	FirstSystemState State = 1 << 0
	FirstUserState   State = 1 << 4
	LastUserState    State = 1 << 11
	LastSystemState  State = 1 << 15

	AllUserStates   State = 0x0FF0
	AllSystemStates State = 0xF00F
	AllStates       State = 0xFFFF
)

// Top returns the most significant bit of s, or NoState.
func (s State) Top() State {
	if s == 0 {
		return NoState
	}
	return State(1) << (15 - bits.LeadingZeros16(uint16(s)))
}

// Count returns the number of bits set in s.
func (s State) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsSingle reports whether exactly one bit is set.
func (s State) IsSingle() bool {
	return s != 0 && s&(s-1) == 0
}

// IsUser reports whether every bit of s lies in the user range.
func (s State) IsUser() bool {
	return s != 0 && s&^AllUserStates == 0
}

// IsSystem reports whether every bit of s lies in the system range.
func (s State) IsSystem() bool {
	return s != 0 && s&^AllSystemStates == 0
}

// Covers reports whether every bit of other is also set in s.
func (s State) Covers(other State) bool {
	return other&^s == 0
}

const (
	subcontrolShift = 0
	subcontrolMask  = 0xFFF

	typeShift = 12
	typeMask  = 0x3

	animatorShift = 15

	primitiveShift = 16
	primitiveMask  = 0x7F

	placementShift = 23
	placementMask  = 0x7

	stateShift = 32
	stateMask  = 0xFFFF

	validMask = subcontrolMask<<subcontrolShift |
		typeMask<<typeShift |
		1<<animatorShift |
		primitiveMask<<primitiveShift |
		placementMask<<placementShift |
		stateMask<<stateShift
)

// Aspect is the composite key. The zero value is Control | Flag with no
// primitive, placement or state.
type Aspect struct {
	bits uint64
}

// Part is a field setter that can be combined into an Aspect.
// Subcontrol, Type, the primitive enums, Placement, State and Aspect itself
// are parts.
type Part interface {
	applyTo(Aspect) Aspect
}

// New composes an aspect from parts, applied left to right.
func New(parts ...Part) Aspect {
	return Aspect{}.Or(parts...)
}

// FromValue rebuilds an aspect from a raw value. Reserved bits are dropped.
func FromValue(v uint64) Aspect {
	return Aspect{bits: v & validMask}
}

// Or returns a copy of a with the parts applied. Setting a field that is
// already set overwrites it, except for states which accumulate.
//
// An Aspect part only carries the fields it has set, and Flag is the zero
// type: a.Or(New(Flag)) leaves a's type alone. Use the Flag part itself,
// a.Or(Flag), to switch an aspect to the flag type.
func (a Aspect) Or(parts ...Part) Aspect {
	for _, p := range parts {
		if p != nil {
			a = p.applyTo(a)
		}
	}
	return a
}

// Value returns the packed key.
func (a Aspect) Value() uint64 {
	return a.bits
}

// Compare orders aspects by their raw value.
func Compare(a, b Aspect) int {
	return cmp.Compare(a.bits, b.bits)
}

// Less reports whether a sorts before b.
func (a Aspect) Less(b Aspect) bool {
	return a.bits < b.bits
}

func (a Aspect) field(shift, mask uint64) uint64 {
	return (a.bits >> shift) & mask
}

func (a *Aspect) setField(shift, mask, v uint64) {
	a.bits = (a.bits &^ (mask << shift)) | ((v & mask) << shift)
}

func (a Aspect) Subcontrol() Subcontrol {
	return Subcontrol(a.field(subcontrolShift, subcontrolMask))
}

func (a *Aspect) SetSubcontrol(s Subcontrol) {
	a.setField(subcontrolShift, subcontrolMask, uint64(s))
}

func (a Aspect) Type() Type {
	return Type(a.field(typeShift, typeMask))
}

// SetType changes the type. The primitive is cleared when the type changes,
// as it has no meaning under a different type.
func (a *Aspect) SetType(t Type) {
	if a.Type() != t {
		a.setField(primitiveShift, primitiveMask, 0)
	}
	a.setField(typeShift, typeMask, uint64(t))
}

func (a Aspect) IsAnimator() bool {
	return a.field(animatorShift, 1) != 0
}

func (a *Aspect) SetAnimator(on bool) {
	v := uint64(0)
	if on {
		v = 1
	}
	a.setField(animatorShift, 1, v)
}

// Primitive returns the raw primitive bits regardless of the type.
func (a Aspect) Primitive() uint8 {
	return uint8(a.field(primitiveShift, primitiveMask))
}

// SetPrimitive sets type and primitive together.
func (a *Aspect) SetPrimitive(t Type, primitive uint8) {
	a.setField(typeShift, typeMask, uint64(t))
	a.setField(primitiveShift, primitiveMask, uint64(primitive))
}

func (a *Aspect) ClearPrimitive() {
	a.setField(primitiveShift, primitiveMask, 0)
}

// FlagPrimitive returns NoFlagPrimitive unless the type is Flag.
func (a Aspect) FlagPrimitive() FlagPrimitive {
	if a.Type() != Flag {
		return NoFlagPrimitive
	}
	return FlagPrimitive(a.Primitive())
}

// MetricPrimitive returns NoMetricPrimitive unless the type is Metric.
func (a Aspect) MetricPrimitive() MetricPrimitive {
	if a.Type() != Metric {
		return NoMetricPrimitive
	}
	return MetricPrimitive(a.Primitive())
}

// ColorPrimitive returns NoColorPrimitive unless the type is Color.
func (a Aspect) ColorPrimitive() ColorPrimitive {
	if a.Type() != Color {
		return NoColorPrimitive
	}
	return ColorPrimitive(a.Primitive())
}

func (a Aspect) Placement() Placement {
	return Placement(a.field(placementShift, placementMask))
}

func (a *Aspect) SetPlacement(p Placement) {
	a.setField(placementShift, placementMask, uint64(p))
}

func (a Aspect) States() State {
	return State(a.field(stateShift, stateMask))
}

// TopState returns the most significant state bit, or NoState.
func (a Aspect) TopState() State {
	return a.States().Top()
}

func (a *Aspect) AddState(s State) {
	a.bits |= uint64(s) << stateShift
}

func (a *Aspect) ClearState(s State) {
	a.bits &^= uint64(s) << stateShift
}

func (a *Aspect) ClearStates() {
	a.setField(stateShift, stateMask, 0)
}

// WithStates returns a copy of a whose state set is exactly s.
func (a Aspect) WithStates(s State) Aspect {
	a.setField(stateShift, stateMask, uint64(s))
	return a
}

// Stateless returns a copy of a without any state bits.
func (a Aspect) Stateless() Aspect {
	return a.WithStates(NoState)
}

// AsAnimator returns a copy of a with the animator flag set.
func (a Aspect) AsAnimator() Aspect {
	a.SetAnimator(true)
	return a
}

// AsValue returns a copy of a with the animator flag cleared.
func (a Aspect) AsValue() Aspect {
	a.SetAnimator(false)
	return a
}

func (s Subcontrol) applyTo(a Aspect) Aspect {
	a.SetSubcontrol(s)
	return a
}

func (t Type) applyTo(a Aspect) Aspect {
	a.SetType(t)
	return a
}

func (p FlagPrimitive) applyTo(a Aspect) Aspect {
	a.SetPrimitive(Flag, uint8(p))
	return a
}

func (p MetricPrimitive) applyTo(a Aspect) Aspect {
	a.SetPrimitive(Metric, uint8(p))
	return a
}

func (p ColorPrimitive) applyTo(a Aspect) Aspect {
	a.SetPrimitive(Color, uint8(p))
	return a
}

func (p Placement) applyTo(a Aspect) Aspect {
	a.SetPlacement(p)
	return a
}

func (s State) applyTo(a Aspect) Aspect {
	a.AddState(s)
	return a
}

// applyTo merges a into base: every field set in a overwrites the field in
// base, states and the animator flag accumulate.
func (a Aspect) applyTo(base Aspect) Aspect {
	if sub := a.Subcontrol(); sub != Control {
		base.SetSubcontrol(sub)
	}
	if a.Primitive() != 0 {
		base.SetPrimitive(a.Type(), a.Primitive())
	} else if a.Type() != Flag {
		base.SetType(a.Type())
	}
	if a.IsAnimator() {
		base.SetAnimator(true)
	}
	if p := a.Placement(); p != NoPlacement {
		base.SetPlacement(p)
	}
	base.AddState(a.States())
	return base
}
