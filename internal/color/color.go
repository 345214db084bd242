// Package color implements the RGB color model used by themes: hex
// parsing, derived-color arithmetic, and the WCAG accessibility math.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an immutable RGB triple. Derived colors (lightened, darkened,
// dimmed) are new values; a Color is never mutated in place.
type Color struct {
	R, G, B uint8
}

// InvalidFormatError is returned when a string is not a 6-digit hex color.
type InvalidFormatError struct {
	Value string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid color format: %q (expected #RRGGBB)", e.Value)
}

// Parse converts "#RRGGBB" or "RRGGBB" (case-insensitive) into a Color.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, &InvalidFormatError{Value: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &InvalidFormatError{Value: s}
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical lower-case "#rrggbb" form. All generators emit
// this form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Lighten moves each channel toward 255 by amount (0.0-1.0).
func (c Color) Lighten(amount float64) Color {
	return Color{
		R: clamp(float64(c.R) + (255-float64(c.R))*amount),
		G: clamp(float64(c.G) + (255-float64(c.G))*amount),
		B: clamp(float64(c.B) + (255-float64(c.B))*amount),
	}
}

// Darken moves each channel toward 0 by amount (0.0-1.0).
func (c Color) Darken(amount float64) Color {
	return Color{
		R: clamp(float64(c.R) * (1 - amount)),
		G: clamp(float64(c.G) * (1 - amount)),
		B: clamp(float64(c.B) * (1 - amount)),
	}
}

// Dim scales each channel by amount (0.0-1.0), producing a muted variant.
// Dim(1.0) is the identity, Dim(0.0) is black.
func (c Color) Dim(amount float64) Color {
	return Color{
		R: clamp(float64(c.R) * amount),
		G: clamp(float64(c.G) * amount),
		B: clamp(float64(c.B) * amount),
	}
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Distance returns the Euclidean distance between two colors in RGB space.
// Range is 0 (identical) to ~441.67 (black vs white). Symmetric.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// RelativeLuminance computes the WCAG relative luminance, 0.0 (black) to
// 1.0 (white).
func (c Color) RelativeLuminance() float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// sRGB channel linearization per WCAG: the 0.03928 threshold and 2.4 gamma.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio (L1+0.05)/(L2+0.05) with
// L1 >= L2. Range is 1.0 (same color) to 21.0 (black on white). Symmetric.
func ContrastRatio(a, b Color) float64 {
	la := a.RelativeLuminance()
	lb := b.RelativeLuminance()
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLight reports whether the color reads as light (luminance above 0.5).
func (c Color) IsLight() bool {
	return c.RelativeLuminance() > 0.5
}
