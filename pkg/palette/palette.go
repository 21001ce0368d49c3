// Package palette holds the fixed colours of the planner weekdays and the
// checklist item markers.
package palette

import (
	"hash/fnv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Items is the marker palette of checklist items.
var Items = []string{
	"#C8C8C8",
	"#86986C",
	"#ACC4F9",
	"#FF5900",
	"#B06944",
	"#FAB42A",
	"#0C76FF",
	"#FFB0D6",
	"#E7E7E7",
}

// Weekdays is the card colour of each day, Monday first.
var Weekdays = [7]string{
	"#FF5900",
	"#FAB42A",
	"#86986C",
	"#ACC4F9",
	"#0C76FF",
	"#FFB0D6",
	"#C8C8C8",
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// Weekday returns the colour of the i-th day of the week, Monday being 0.
func Weekday(i int) colorful.Color {
	if i < 0 || i >= len(Weekdays) {
		return mustHex(Weekdays[len(Weekdays)-1])
	}
	return mustHex(Weekdays[i])
}

// ForID picks a stable palette colour for an item id.
func ForID(id string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return mustHex(Items[h.Sum32()%uint32(len(Items))])
}

// Highlight lightens c for the current day.
func Highlight(c colorful.Color) colorful.Color {
	return c.BlendLab(white, 0.45).Clamped()
}

// Muted darkens c for finished items and idle days.
func Muted(c colorful.Color) colorful.Color {
	return c.BlendLab(colorful.Color{}, 0.5).Clamped()
}

// RGB returns the 8-bit channels of c.
func RGB(c colorful.Color) (int, int, int) {
	r, g, b := c.RGB255()
	return int(r), int(g), int(b)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
