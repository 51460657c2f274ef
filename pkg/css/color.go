package css

import (
	"fmt"
	"strconv"
)

// Color is an 8-bit sRGB color with alpha. It is comparable and can be used as a map key.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque reports whether the alpha channel is 255.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Hex returns the color in lowercase #rrggbb notation, or #rrggbbaa when the color is translucent.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String returns the color in CSS rgba() notation with alpha as a 0-1 fraction.
func (c Color) String() string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64)
	if len(alpha) > 5 {
		alpha = strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}
