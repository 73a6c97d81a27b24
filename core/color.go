package core

import "fmt"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette shared by both games
var (
	RGBBlack   = RGB{0x00, 0x00, 0x00}
	RGBWhite   = RGB{0xFF, 0xFF, 0xFF}
	RGBRed     = RGB{0xFF, 0x00, 0x00}
	RGBGreen   = RGB{0x00, 0xFF, 0x00}
	RGBBlue    = RGB{0x00, 0x00, 0xFF}
	RGBYellow  = RGB{0xFF, 0xFF, 0x00}
	RGBGray    = RGB{0x80, 0x80, 0x80}
	RGBOrange  = RGB{0xFF, 0xA5, 0x00}
	RGBDarkRed = RGB{0x96, 0x00, 0x00}
	RGBGold    = RGB{0xFF, 0xD7, 0x00}

	// Health bar green is the CSS named color, darker than RGBGreen
	RGBHealthGreen = RGB{0x00, 0x80, 0x00}
)

// Hex returns the #rrggbb form used by browser canvases
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
