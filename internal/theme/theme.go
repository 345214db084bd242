// Package theme holds the validated in-memory representation of a theme
// and the TOML parsing that produces its raw form.
package theme

import (
	"strings"

	"github.com/huffs-projects/themectl/internal/color"
)

// Variant values for the dark/light classification of a theme.
const (
	VariantDark  = "dark"
	VariantLight = "light"
)

// Theme is the validated, immutable unit of work. A Theme downstream of the
// validator has already satisfied all required-field and color-format rules;
// generators assume this and do not re-validate.
type Theme struct {
	Name        string
	Description string
	// Variant is "dark", "light", or "" when neither declared nor
	// inferable. Use EffectiveVariant for the name-suffix fallback.
	Variant    string
	Colors     Palette
	Properties Properties
}

// Palette holds the nine required colors plus six optional ones. Optional
// colors are nil when absent; defaulting for an absent color is a
// per-generator decision, never recorded here.
type Palette struct {
	BG      color.Color
	FG      color.Color
	Accent  color.Color
	Red     color.Color
	Green   color.Color
	Yellow  color.Color
	Blue    color.Color
	Magenta color.Color
	Cyan    color.Color

	Orange *color.Color
	Purple *color.Color
	Pink   *color.Color
	White  *color.Color
	Black  *color.Color
	Gray   *color.Color
}

// RequiredColorNames lists the nine required palette keys in canonical order.
var RequiredColorNames = []string{
	"bg", "fg", "accent", "red", "green", "yellow", "blue", "magenta", "cyan",
}

// OptionalColorNames lists the six optional palette keys in canonical order.
var OptionalColorNames = []string{
	"orange", "purple", "pink", "white", "black", "gray",
}

// Get looks up a palette color by role name. The second return is false for
// unknown names and for absent optional colors.
func (p Palette) Get(name string) (color.Color, bool) {
	switch name {
	case "bg":
		return p.BG, true
	case "fg":
		return p.FG, true
	case "accent":
		return p.Accent, true
	case "red":
		return p.Red, true
	case "green":
		return p.Green, true
	case "yellow":
		return p.Yellow, true
	case "blue":
		return p.Blue, true
	case "magenta":
		return p.Magenta, true
	case "cyan":
		return p.Cyan, true
	case "orange":
		return deref(p.Orange)
	case "purple":
		return deref(p.Purple)
	case "pink":
		return deref(p.Pink)
	case "white":
		return deref(p.White)
	case "black":
		return deref(p.Black)
	case "gray":
		return deref(p.Gray)
	}
	return color.Color{}, false
}

func deref(c *color.Color) (color.Color, bool) {
	if c == nil {
		return color.Color{}, false
	}
	return *c, true
}

// NamedColor pairs a palette role with its value.
type NamedColor struct {
	Name  string
	Color color.Color
}

// Defined returns every present color (required then optional) in canonical
// order. Used by the similarity check and by preview rendering.
func (p Palette) Defined() []NamedColor {
	var out []NamedColor
	for _, name := range RequiredColorNames {
		c, _ := p.Get(name)
		out = append(out, NamedColor{Name: name, Color: c})
	}
	for _, name := range OptionalColorNames {
		if c, ok := p.Get(name); ok {
			out = append(out, NamedColor{Name: name, Color: c})
		}
	}
	return out
}

// Properties are the optional numeric knobs. A nil pointer means the key was
// absent from the source, which generators treat differently from an
// explicit zero where the target documents it.
type Properties struct {
	BorderRadius      *uint
	BorderWidth       *uint
	ShadowBlur        *uint
	AnimationDuration *float64
	Spacing           *uint
}

// variant suffixes ordered longest-first so "-darkest" is not matched as
// "-dark" plus trailing text.
var variantSuffixes = []struct {
	suffix  string
	variant string
}{
	{"-darkest", VariantDark},
	{"-lightest", VariantLight},
	{"-dark", VariantDark},
	{"-light", VariantLight},
}

// DetectVariant infers dark/light from a theme name suffix. Returns "" when
// the name carries no variant suffix.
func DetectVariant(name string) string {
	lower := strings.ToLower(name)
	for _, s := range variantSuffixes {
		if strings.HasSuffix(lower, s.suffix) {
			return s.variant
		}
	}
	return ""
}

// BaseName strips a variant suffix from a theme name, e.g. "gruvbox-dark"
// becomes "gruvbox".
func BaseName(name string) string {
	lower := strings.ToLower(name)
	for _, s := range variantSuffixes {
		if strings.HasSuffix(lower, s.suffix) {
			return name[:len(name)-len(s.suffix)]
		}
	}
	return name
}

// EffectiveVariant returns the declared variant, or the one inferred from
// the name when the field is absent.
func (t *Theme) EffectiveVariant() string {
	if t.Variant != "" {
		return t.Variant
	}
	return DetectVariant(t.Name)
}

// BaseName strips the variant suffix from the theme's name.
func (t *Theme) BaseName() string {
	return BaseName(t.Name)
}

// FullName is the base name joined with the effective variant, or the plain
// name when no variant applies.
func (t *Theme) FullName() string {
	if v := t.EffectiveVariant(); v != "" {
		return t.BaseName() + "-" + v
	}
	return t.Name
}

// IsDark reports whether the theme should be treated as dark: the effective
// variant when declared, otherwise a background-luminance heuristic.
func (t *Theme) IsDark() bool {
	switch t.EffectiveVariant() {
	case VariantDark:
		return true
	case VariantLight:
		return false
	}
	return !t.Colors.BG.IsLight()
}
