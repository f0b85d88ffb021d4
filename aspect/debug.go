package aspect

import (
	"fmt"
	"strings"
)

func (t Type) String() string {
	switch t {
	case Flag:
		return "Flag"
	case Metric:
		return "Metric"
	case Color:
		return "Color"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

func (p FlagPrimitive) String() string {
	switch p {
	case NoFlagPrimitive:
		return "NoFlagPrimitive"
	case Alignment:
		return "Alignment"
	case Direction:
		return "Direction"
	case Style:
		return "Style"
	case SizeMode:
		return "SizeMode"
	case Decoration:
		return "Decoration"
	case GraphicRole:
		return "GraphicRole"
	case FontRole:
		return "FontRole"
	}
	return fmt.Sprintf("FlagPrimitive(%d)", uint8(p))
}

func (p MetricPrimitive) String() string {
	switch p {
	case NoMetricPrimitive:
		return "NoMetricPrimitive"
	case Size:
		return "Size"
	case Position:
		return "Position"
	case MinimumWidth:
		return "MinimumWidth"
	case MinimumHeight:
		return "MinimumHeight"
	case MaximumWidth:
		return "MaximumWidth"
	case MaximumHeight:
		return "MaximumHeight"
	case Margin:
		return "Margin"
	case Padding:
		return "Padding"
	case Shadow:
		return "Shadow"
	case Spacing:
		return "Spacing"
	case Shape:
		return "Shape"
	case Border:
		return "Border"
	}
	return fmt.Sprintf("MetricPrimitive(%d)", uint8(p))
}

func (p ColorPrimitive) String() string {
	switch p {
	case NoColorPrimitive:
		return "NoColorPrimitive"
	case TextColor:
		return "TextColor"
	case StyleColor:
		return "StyleColor"
	case LinkColor:
		return "LinkColor"
	case BorderColor:
		return "BorderColor"
	}
	return fmt.Sprintf("ColorPrimitive(%d)", uint8(p))
}

func (p Placement) String() string {
	switch p {
	case NoPlacement:
		return "NoPlacement"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	}
	return fmt.Sprintf("Placement(%d)", uint8(p))
}

// ParsePlacement is the inverse of Placement.String, case-insensitive.
func ParsePlacement(name string) (Placement, bool) {
	for p := NoPlacement; p <= Bottom; p++ {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	return NoPlacement, false
}

// String names the bits of s using the default registry.
func (s State) String() string {
	if s == NoState {
		return "NoState"
	}
	return strings.Join(defaultRegistry.StateNames(NoClass, s), " | ")
}

func (s Subcontrol) String() string {
	return defaultRegistry.SubcontrolName(s)
}

// String formats a using the default registry.
func (a Aspect) String() string {
	return defaultRegistry.Format(NoClass, a)
}

// Format renders a like "PushButton::Panel | Color | TextColor | Pressed".
// State names are resolved from the point of view of class c.
func (r *Registry) Format(c Class, a Aspect) string {
	parts := []string{r.SubcontrolName(a.Subcontrol()), a.Type().String()}

	if a.Primitive() != 0 {
		switch a.Type() {
		case Flag:
			parts = append(parts, a.FlagPrimitive().String())
		case Metric:
			parts = append(parts, a.MetricPrimitive().String())
		case Color:
			parts = append(parts, a.ColorPrimitive().String())
		default:
			parts = append(parts, fmt.Sprintf("Primitive(%d)", a.Primitive()))
		}
	}
	if p := a.Placement(); p != NoPlacement {
		parts = append(parts, p.String())
	}
	if a.IsAnimator() {
		parts = append(parts, "Animator")
	}
	parts = append(parts, r.StateNames(c, a.States())...)

	return strings.Join(parts, " | ")
}

// ParseType is the inverse of Type.String, case-insensitive.
func ParseType(name string) (Type, bool) {
	for t := Flag; t <= LastType; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return Flag, false
}

// ParsePrimitive looks up a flag, metric or color primitive by name,
// case-insensitive. The result carries its type when applied to an aspect.
func ParsePrimitive(name string) (Part, bool) {
	for p := Alignment; p <= FontRole; p++ {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	for p := Size; p <= Border; p++ {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	for p := TextColor; p <= BorderColor; p++ {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	return nil, false
}
