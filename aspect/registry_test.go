package aspect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSubcontrolIsStrictlyIncreasing(t *testing.T) {
	r := NewRegistry()
	button := r.MustRegisterClass("PushButton", NoClass)

	panel, err := r.NextSubcontrol(button, "Panel")
	require.NoError(t, err)
	text, err := r.NextSubcontrol(button, "Text")
	require.NoError(t, err)

	assert.NotEqual(t, panel, text)
	assert.Greater(t, text, panel)
	assert.Greater(t, panel, Control)

	assert.Equal(t, "PushButton::Panel", r.SubcontrolName(panel))
	assert.Equal(t, []string{"PushButton::Panel", "PushButton::Text"}, r.SubcontrolNames(button))
}

func TestSubcontrolsAboveInheritedMaximum(t *testing.T) {
	r := NewRegistry()
	base := r.MustRegisterClass("Control", NoClass)
	derived := r.MustRegisterClass("Slider", base)

	bg := r.MustNextSubcontrol(base, "Background")
	handle := r.MustNextSubcontrol(derived, "Handle")

	assert.Greater(t, handle, bg)
	assert.Equal(t, []Subcontrol{bg, handle}, r.Subcontrols(derived))
	assert.Equal(t, []Subcontrol{bg}, r.Subcontrols(base))

	s, ok := r.LookupSubcontrol(derived, "Background")
	require.True(t, ok)
	assert.Equal(t, bg, s)
}

func TestSubcontrolCapacity(t *testing.T) {
	r := NewRegistry()
	c := r.MustRegisterClass("Huge", NoClass)

	for i := 1; i <= int(LastSubcontrol); i++ {
		_, err := r.NextSubcontrol(c, fmt.Sprintf("S%d", i))
		require.NoError(t, err)
	}

	_, err := r.NextSubcontrol(c, "OneTooMany")
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Panics(t, func() { r.MustNextSubcontrol(c, "Another") })
}

func TestDuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	c := r.MustRegisterClass("PushButton", NoClass)

	_, err := r.RegisterClass("PushButton", NoClass)
	assert.ErrorIs(t, err, ErrDuplicate)

	r.MustNextSubcontrol(c, "Panel")
	_, err = r.NextSubcontrol(c, "Panel")
	assert.ErrorIs(t, err, ErrDuplicate)

	r.MustRegisterState(c, FirstUserState, "Pressed")
	_, err = r.RegisterState(c, FirstUserState<<1, "Pressed")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegisterStateValidation(t *testing.T) {
	r := NewRegistry()
	c := r.MustRegisterClass("PushButton", NoClass)

	_, err := r.RegisterState(c, LastSystemState, "Bogus")
	assert.ErrorIs(t, err, ErrInvalidState, "system bit in the user call")

	_, err = r.RegisterState(c, FirstUserState|FirstUserState<<1, "Two")
	assert.ErrorIs(t, err, ErrInvalidState, "more than one bit")

	_, err = r.RegisterSystemState(c, FirstUserState, "Bogus")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = r.RegisterState(Class(99), FirstUserState, "Orphan")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestStateBitsDoNotCollideWithAncestors(t *testing.T) {
	r := NewRegistry()
	control := r.MustRegisterClass("Control", NoClass)
	button := r.MustRegisterClass("AbstractButton", control)
	push := r.MustRegisterClass("PushButton", button)
	slider := r.MustRegisterClass("Slider", control)

	disabled := r.MustRegisterSystemState(control, LastSystemState, "Disabled")
	pressed := r.MustRegisterState(button, FirstUserState, "Pressed")

	_, err := r.RegisterState(push, FirstUserState, "Flat")
	assert.ErrorIs(t, err, ErrInvalidState, "bit taken by the parent")

	flat, err := r.NextState(push, "Flat")
	require.NoError(t, err)
	assert.Equal(t, FirstUserState<<1, flat)

	// a sibling hierarchy may reuse the bit
	sliderPressed, err := r.RegisterState(slider, FirstUserState, "Pressed")
	require.NoError(t, err)
	assert.Equal(t, pressed, sliderPressed)

	_, err = r.RegisterSystemState(push, LastSystemState, "AlsoDisabled")
	assert.ErrorIs(t, err, ErrInvalidState)

	assert.Equal(t, disabled|pressed|flat, r.States(push))
	assert.Equal(t, "AbstractButton::Pressed", r.StateName(push, pressed))
	assert.Equal(t, "Slider::Pressed", r.StateName(slider, pressed))
	assert.Equal(t, []string{"Control::Disabled", "PushButton::Flat"}, r.StateNames(push, disabled|flat))

	s, ok := r.StateByName(push, "pressed")
	require.True(t, ok)
	assert.Equal(t, pressed, s)
}

func TestNextStateCapacity(t *testing.T) {
	r := NewRegistry()
	c := r.MustRegisterClass("Busy", NoClass)

	for i := 0; i < AllUserStates.Count(); i++ {
		s, err := r.NextState(c, fmt.Sprintf("S%d", i))
		require.NoError(t, err)
		assert.Equal(t, FirstUserState<<i, s)
	}

	_, err := r.NextState(c, "Overflow")
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Panics(t, func() { r.MustNextState(c, "Overflow2") })
}

func TestClassHierarchy(t *testing.T) {
	r := NewRegistry()
	control := r.MustRegisterClass("Control", NoClass)
	box := r.MustRegisterClass("Box", control)
	button := r.MustRegisterClass("PushButton", box)

	assert.Equal(t, []Class{button, box, control}, r.Ancestry(button))
	assert.True(t, r.Inherits(button, control))
	assert.False(t, r.Inherits(control, button))
	assert.Equal(t, box, r.Parent(button))
	assert.Equal(t, NoClass, r.Parent(control))
	assert.Equal(t, []Class{control, box, button}, r.Classes())

	c, ok := r.ClassByName("Box")
	require.True(t, ok)
	assert.Equal(t, box, c)

	_, err := r.RegisterClass("Orphan", Class(77))
	assert.ErrorIs(t, err, ErrUnknownClass)
}
