package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

func (c RGBColor) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the color as "#rrggbb" with two lowercase hex digits per channel.
func (c RGBColor) Hex() string {
	return c.toColorful().Hex()
}

// HSL returns the color in HSL space, rounded down to whole units.
func (c RGBColor) HSL() HSLColor {
	h, s, l := c.toColorful().Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// String implements fmt.Stringer.
func (c RGBColor) String() string {
	return c.Hex()
}

// SampleRGB extracts the RGB color at a pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X offset from the left edge (0 = leftmost pixel).
//   - y: Y offset from the top edge (0 = topmost pixel).
//
// Returns an error if the image has zero width or height, or if (x, y) lies
// outside it. Grayscale values are replicated into all three channels and
// palette indices are resolved to their palette entries. Alpha is discarded:
// a half-transparent red pixel samples as pure red.
func SampleRGB(img image.Image, x, y int) (RGBColor, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return RGBColor{}, fmt.Errorf("image has no pixels (%dx%d)", bounds.Dx(), bounds.Dy())
	}
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	// Crop converts the single pixel to straight NRGBA whatever the source model.
	px := bounds.Min.Add(image.Pt(x, y))
	c := imaging.Crop(img, image.Rectangle{Min: px, Max: px.Add(image.Pt(1, 1))}).NRGBAAt(0, 0)
	return RGBColor{R: c.R, G: c.G, B: c.B}, nil
}
