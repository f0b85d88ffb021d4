// Package controls registers the standard control classes with their
// subcontrols and states, and provides the skinlets that lay them out.
package controls

import (
	"errors"

	"github.com/agiangrant/skinny/aspect"
)

// Controls holds the handles allocated by Setup.
type Controls struct {
	Registry *aspect.Registry

	Control    aspect.Class
	Box        aspect.Class
	PushButton aspect.Class
	Slider     aspect.Class
	TextLabel  aspect.Class

	// System states shared by every control.
	Disabled aspect.State
	Hovered  aspect.State
	Focused  aspect.State

	BoxPanel aspect.Subcontrol

	ButtonPanel   aspect.Subcontrol
	ButtonText    aspect.Subcontrol
	ButtonGraphic aspect.Subcontrol
	ButtonPressed aspect.State
	ButtonChecked aspect.State

	SliderPanel   aspect.Subcontrol
	SliderGroove  aspect.Subcontrol
	SliderFill    aspect.Subcontrol
	SliderHandle  aspect.Subcontrol
	SliderPressed aspect.State
	SliderMinimum aspect.State
	SliderMaximum aspect.State

	LabelPanel aspect.Subcontrol
	LabelText  aspect.Subcontrol
}

// setup keeps the first registration error so Setup reads as a list.
type setup struct {
	reg *aspect.Registry
	err error
}

func (s *setup) class(name string, parent aspect.Class) aspect.Class {
	if s.err != nil {
		return aspect.NoClass
	}
	var c aspect.Class
	c, s.err = s.reg.RegisterClass(name, parent)
	return c
}

func (s *setup) subcontrol(c aspect.Class, name string) aspect.Subcontrol {
	if s.err != nil {
		return aspect.Control
	}
	var sub aspect.Subcontrol
	sub, s.err = s.reg.NextSubcontrol(c, name)
	return sub
}

func (s *setup) systemState(c aspect.Class, bit aspect.State, name string) aspect.State {
	if s.err != nil {
		return aspect.NoState
	}
	var st aspect.State
	st, s.err = s.reg.RegisterSystemState(c, bit, name)
	return st
}

func (s *setup) state(c aspect.Class, name string) aspect.State {
	if s.err != nil {
		return aspect.NoState
	}
	var st aspect.State
	st, s.err = s.reg.NextState(c, name)
	return st
}

// Setup registers the standard classes in reg. It must run once per
// registry, before any skin or control is built.
func Setup(reg *aspect.Registry) (*Controls, error) {
	s := &setup{reg: reg}
	c := &Controls{Registry: reg}

	c.Control = s.class("Control", aspect.NoClass)
	c.Disabled = s.systemState(c.Control, aspect.FirstSystemState, "Disabled")
	c.Hovered = s.systemState(c.Control, aspect.FirstSystemState<<1, "Hovered")
	c.Focused = s.systemState(c.Control, aspect.FirstSystemState<<2, "Focused")

	c.Box = s.class("Box", c.Control)
	c.BoxPanel = s.subcontrol(c.Box, "Panel")

	c.PushButton = s.class("PushButton", c.Control)
	c.ButtonPanel = s.subcontrol(c.PushButton, "Panel")
	c.ButtonText = s.subcontrol(c.PushButton, "Text")
	c.ButtonGraphic = s.subcontrol(c.PushButton, "Graphic")
	c.ButtonPressed = s.state(c.PushButton, "Pressed")
	c.ButtonChecked = s.state(c.PushButton, "Checked")

	c.Slider = s.class("Slider", c.Control)
	c.SliderPanel = s.subcontrol(c.Slider, "Panel")
	c.SliderGroove = s.subcontrol(c.Slider, "Groove")
	c.SliderFill = s.subcontrol(c.Slider, "Fill")
	c.SliderHandle = s.subcontrol(c.Slider, "Handle")
	c.SliderPressed = s.state(c.Slider, "Pressed")
	c.SliderMinimum = s.state(c.Slider, "Minimum")
	c.SliderMaximum = s.state(c.Slider, "Maximum")

	c.TextLabel = s.class("TextLabel", c.Control)
	c.LabelPanel = s.subcontrol(c.TextLabel, "Panel")
	c.LabelText = s.subcontrol(c.TextLabel, "Text")

	if s.err != nil {
		return nil, errors.Join(errors.New("controls: setup failed"), s.err)
	}
	return c, nil
}

// MustSetup is Setup that panics on error.
func MustSetup(reg *aspect.Registry) *Controls {
	c, err := Setup(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// Panel returns the panel subcontrol of class, if it has one.
func (c *Controls) Panel(class aspect.Class) (aspect.Subcontrol, bool) {
	return c.Registry.LookupSubcontrol(class, "Panel")
}
