package generator

import (
	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

// Fallbacks for absent optional colors, computed from the theme so they
// track the actual palette:
//
//	black  -> bg
//	gray   -> bg lightened 0.1
//	white  -> fg lightened 0.2
//	orange -> yellow
//	purple -> magenta
//	pink   -> magenta lightened 0.2

func blackOr(t *theme.Theme) color.Color {
	if t.Colors.Black != nil {
		return *t.Colors.Black
	}
	return t.Colors.BG
}

func grayOr(t *theme.Theme) color.Color {
	if t.Colors.Gray != nil {
		return *t.Colors.Gray
	}
	return t.Colors.BG.Lighten(0.1)
}

func whiteOr(t *theme.Theme) color.Color {
	if t.Colors.White != nil {
		return *t.Colors.White
	}
	return t.Colors.FG.Lighten(0.2)
}

func orangeOr(t *theme.Theme) color.Color {
	if t.Colors.Orange != nil {
		return *t.Colors.Orange
	}
	return t.Colors.Yellow
}

func purpleOr(t *theme.Theme) color.Color {
	if t.Colors.Purple != nil {
		return *t.Colors.Purple
	}
	return t.Colors.Magenta
}

func pinkOr(t *theme.Theme) color.Color {
	if t.Colors.Pink != nil {
		return *t.Colors.Pink
	}
	return t.Colors.Magenta.Lighten(0.2)
}

func uintOr(p *uint, def uint) uint {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

// ansiPalette builds the 16-color terminal palette: normal 0-7 then bright
// 8-15, with bright variants lightened from their normal counterparts.
func ansiPalette(t *theme.Theme) [16]color.Color {
	return [16]color.Color{
		blackOr(t),
		t.Colors.Red,
		t.Colors.Green,
		t.Colors.Yellow,
		t.Colors.Blue,
		t.Colors.Magenta,
		t.Colors.Cyan,
		t.Colors.FG,
		grayOr(t),
		t.Colors.Red.Lighten(0.2),
		t.Colors.Green.Lighten(0.2),
		t.Colors.Yellow.Lighten(0.2),
		t.Colors.Blue.Lighten(0.2),
		t.Colors.Magenta.Lighten(0.2),
		t.Colors.Cyan.Lighten(0.2),
		whiteOr(t),
	}
}
