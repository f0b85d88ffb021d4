package tw

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/agiangrant/skinny/style"
)

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Tailwind palette, one entry per shade in the order of shades.
var palette = map[string][]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"indigo": {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81"},
}

var namedColors = map[string]style.Color{
	"white":       style.RGB(0xFF, 0xFF, 0xFF),
	"black":       style.RGB(0, 0, 0),
	"transparent": style.Transparent,
}

// LookupColor resolves a palette name such as "blue-500", "white" or
// "gray-900/50" (50% opacity).
func LookupColor(name string) (style.Color, bool) {
	name, opacity, hasOpacity := strings.Cut(name, "/")

	c, ok := namedColors[name]
	if !ok {
		family, shade, found := strings.Cut(name, "-")
		if !found {
			return style.Transparent, false
		}
		hexes, ok := palette[family]
		if !ok {
			return style.Transparent, false
		}
		i := slices.Index(shades, shade)
		if i < 0 {
			return style.Transparent, false
		}
		c, _ = style.ParseColor(hexes[i])
	}

	if hasOpacity {
		pct, err := strconv.Atoi(opacity)
		if err != nil || pct < 0 || pct > 100 {
			return style.Transparent, false
		}
		c = c.WithAlpha(uint8((pct*255 + 50) / 100))
	}
	return c, true
}

// PaletteNames lists every "family-shade" name of the palette, sorted by
// family.
func PaletteNames() []string {
	families := lo.Keys(palette)
	slices.Sort(families)

	var names []string
	for _, family := range families {
		for _, shade := range shades {
			names = append(names, fmt.Sprintf("%s-%s", family, shade))
		}
	}
	return names
}
