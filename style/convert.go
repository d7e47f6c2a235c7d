package style

import (
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[Property]color.RGBA{
	"black":   {0, 0, 0, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0, 0, 0xff},
	"green":   {0, 0x80, 0, 0xff},
	"lime":    {0, 0xff, 0, 0xff},
	"blue":    {0, 0, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0, 0xff},
	"orange":  {0xff, 0xa5, 0, 0xff},
	"purple":  {0x80, 0, 0x80, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"teal":    {0, 0x80, 0x80, 0xff},
	"navy":    {0, 0, 0x80, 0xff},
	"maroon":  {0x80, 0, 0, 0xff},
	"olive":   {0x80, 0x80, 0, 0xff},
	"fuchsia": {0xff, 0, 0xff, 0xff},
	"aqua":    {0, 0xff, 0xff, 0xff},
}

// Color converts a property value to a color. Named CSS colors and
// #rgb/#rrggbb hex notation are understood; "default" and unparsable
// values yield nil.
func (p Property) Color() color.Color {
	if p == "default" || p == NullStyle {
		return nil
	}
	if c, ok := namedColors[p]; ok {
		return c
	}
	if c, ok := hexColor(p.String()); ok {
		return c
	}
	return nil
}

func hexColor(s string) (color.RGBA, bool) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 { // #rgb => #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, true
}

// ColorString renders a color as a CSS value, preferring well-known color
// names and falling back to hex notation.
func ColorString(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	r, g, b, _ := c.RGBA()
	rgba := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	for name, known := range namedColors {
		if name == "grey" {
			continue // alias of gray
		}
		if known == rgba {
			return name.String()
		}
	}
	return "#" + hexByte(rgba.R) + hexByte(rgba.G) + hexByte(rgba.B)
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
