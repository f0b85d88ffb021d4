package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/skinny/hints"
	"github.com/agiangrant/skinny/style"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// swatch renders a two cell block of c. Translucent colors render as
// their opaque channel values.
func swatch(c style.Color) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func renderValue(v hints.Value) string {
	s := valueStyle.Render(v.String())
	if c, ok := v.Color(); ok {
		s = swatch(c) + " " + s
	}
	return s
}
