package theme

import (
	"fmt"

	"github.com/huffs-projects/themectl/internal/color"
)

// GenerateVariant derives the dark or light counterpart of a theme. When the
// source already matches the requested variant the palette is kept and only
// the name and variant field change; otherwise bg/fg are pushed apart and
// the accent palette is adjusted toward the new background.
func GenerateVariant(t *Theme, variant string) (*Theme, error) {
	if variant != VariantDark && variant != VariantLight {
		return nil, fmt.Errorf("invalid variant %q: must be %q or %q", variant, VariantDark, VariantLight)
	}
	wantDark := variant == VariantDark
	sourceDark := !t.Colors.BG.IsLight()

	out := *t
	out.Name = t.BaseName() + "-" + variant
	out.Variant = variant

	if wantDark == sourceDark {
		return &out, nil
	}

	// Inversion factors tuned for readability rather than exact inversion.
	bgFactor, fgFactor, colorFactor := 0.75, 0.25, 0.3
	if wantDark {
		bgFactor, fgFactor, colorFactor = 0.85, 0.15, 0.2
	}

	adjust := func(c color.Color) color.Color {
		if wantDark {
			return c.Lighten(colorFactor)
		}
		return c.Darken(colorFactor)
	}
	adjustOpt := func(c *color.Color) *color.Color {
		if c == nil {
			return nil
		}
		v := adjust(*c)
		return &v
	}

	if wantDark {
		out.Colors.BG = t.Colors.BG.Darken(bgFactor)
		out.Colors.FG = t.Colors.FG.Lighten(fgFactor)
	} else {
		out.Colors.BG = t.Colors.BG.Lighten(bgFactor)
		out.Colors.FG = t.Colors.FG.Darken(fgFactor)
	}
	out.Colors.Accent = adjust(t.Colors.Accent)
	out.Colors.Red = adjust(t.Colors.Red)
	out.Colors.Green = adjust(t.Colors.Green)
	out.Colors.Yellow = adjust(t.Colors.Yellow)
	out.Colors.Blue = adjust(t.Colors.Blue)
	out.Colors.Magenta = adjust(t.Colors.Magenta)
	out.Colors.Cyan = adjust(t.Colors.Cyan)
	out.Colors.Orange = adjustOpt(t.Colors.Orange)
	out.Colors.Purple = adjustOpt(t.Colors.Purple)
	out.Colors.Pink = adjustOpt(t.Colors.Pink)
	out.Colors.White = adjustOpt(t.Colors.White)
	out.Colors.Black = adjustOpt(t.Colors.Black)
	out.Colors.Gray = adjustOpt(t.Colors.Gray)

	if t.Description != "" {
		out.Description = fmt.Sprintf("%s (%s)", t.Description, variant)
	}
	return &out, nil
}
