package style

// Alignment flags, combinable horizontally and vertically.
type Alignment uint

const (
	AlignLeft    Alignment = 0x01
	AlignRight   Alignment = 0x02
	AlignHCenter Alignment = 0x04
	AlignJustify Alignment = 0x08

	AlignTop     Alignment = 0x20
	AlignBottom  Alignment = 0x40
	AlignVCenter Alignment = 0x80

	AlignCenter = AlignHCenter | AlignVCenter

	AlignHorizontalMask = AlignLeft | AlignRight | AlignHCenter | AlignJustify
	AlignVerticalMask   = AlignTop | AlignBottom | AlignVCenter
)

// Horizontal returns the horizontal part of a.
func (a Alignment) Horizontal() Alignment {
	return a & AlignHorizontalMask
}

// Vertical returns the vertical part of a.
func (a Alignment) Vertical() Alignment {
	return a & AlignVerticalMask
}
