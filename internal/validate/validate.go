// Package validate turns raw theme documents into validated themes and
// runs the advisory accessibility checks.
package validate

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

// WCAG contrast thresholds and the RGB distance below which two palette
// colors are reported as too similar. The distance metric is Euclidean; see
// color.Distance.
const (
	ContrastAA          = 4.5
	ContrastAAA         = 7.0
	SimilarityThreshold = 30.0
)

// MissingFieldError reports a required field absent from the source.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidColorError reports a color value that is not valid #RRGGBB hex.
type InvalidColorError struct {
	Field string
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color format for %q: %q (expected #RRGGBB)", e.Field, e.Value)
}

// ValidationError aggregates every structural problem found in one pass so
// a user can fix them all at once.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("theme validation failed: %s", strings.Join(msgs, "; "))
}

// Structural runs the blocking validation pass: name present, all nine
// required colors present, every present color in valid hex form. On
// success it returns the typed Theme; an invalid theme never reaches a
// generator.
func Structural(doc *theme.Document) (*theme.Theme, error) {
	var problems []error

	if strings.TrimSpace(doc.Name) == "" {
		problems = append(problems, &MissingFieldError{Field: "name"})
	}
	if doc.Variant != "" && doc.Variant != theme.VariantDark && doc.Variant != theme.VariantLight {
		problems = append(problems, fmt.Errorf("invalid variant %q: must be %q or %q",
			doc.Variant, theme.VariantDark, theme.VariantLight))
	}

	t := &theme.Theme{
		Name:        doc.Name,
		Description: doc.Description,
		Variant:     doc.Variant,
		Properties: theme.Properties{
			BorderRadius:      doc.Properties.BorderRadius,
			BorderWidth:       doc.Properties.BorderWidth,
			ShadowBlur:        doc.Properties.ShadowBlur,
			AnimationDuration: doc.Properties.AnimationDuration,
			Spacing:           doc.Properties.Spacing,
		},
	}

	required := map[string]*color.Color{
		"bg":      &t.Colors.BG,
		"fg":      &t.Colors.FG,
		"accent":  &t.Colors.Accent,
		"red":     &t.Colors.Red,
		"green":   &t.Colors.Green,
		"yellow":  &t.Colors.Yellow,
		"blue":    &t.Colors.Blue,
		"magenta": &t.Colors.Magenta,
		"cyan":    &t.Colors.Cyan,
	}
	for _, name := range theme.RequiredColorNames {
		raw := doc.Colors.Get(name)
		if raw == nil || *raw == "" {
			problems = append(problems, &MissingFieldError{Field: "colors." + name})
			continue
		}
		c, err := color.Parse(*raw)
		if err != nil {
			problems = append(problems, &InvalidColorError{Field: "colors." + name, Value: *raw})
			continue
		}
		*required[name] = c
	}

	optional := map[string]**color.Color{
		"orange": &t.Colors.Orange,
		"purple": &t.Colors.Purple,
		"pink":   &t.Colors.Pink,
		"white":  &t.Colors.White,
		"black":  &t.Colors.Black,
		"gray":   &t.Colors.Gray,
	}
	for _, name := range theme.OptionalColorNames {
		raw := doc.Colors.Get(name)
		if raw == nil {
			continue
		}
		c, err := color.Parse(*raw)
		if err != nil {
			problems = append(problems, &InvalidColorError{Field: "colors." + name, Value: *raw})
			continue
		}
		*optional[name] = &c
	}

	if doc.Properties.AnimationDuration != nil && *doc.Properties.AnimationDuration < 0 {
		problems = append(problems, fmt.Errorf("properties.animation_duration must be non-negative, got %v",
			*doc.Properties.AnimationDuration))
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return t, nil
}

// Level classifies an accessibility finding.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
)

func (l Level) String() string {
	if l == LevelWarning {
		return "warning"
	}
	return "info"
}

// Warning is a single advisory accessibility finding. Warnings never block
// a theme from being applied or exported.
type Warning struct {
	Level   Level
	Message string
}

// Accessibility runs the advisory pass: bg/fg WCAG contrast and pairwise
// color similarity over every defined color. The theme must already have
// passed Structural.
func Accessibility(t *theme.Theme) []Warning {
	var warnings []Warning

	ratio := color.ContrastRatio(t.Colors.BG, t.Colors.FG)
	switch {
	case ratio < ContrastAA:
		warnings = append(warnings, Warning{
			Level: LevelWarning,
			Message: fmt.Sprintf("bg (%s) / fg (%s) contrast ratio %.2f:1 does not meet WCAG AA (%.1f:1 required)",
				t.Colors.BG.Hex(), t.Colors.FG.Hex(), ratio, ContrastAA),
		})
	case ratio < ContrastAAA:
		warnings = append(warnings, Warning{
			Level: LevelInfo,
			Message: fmt.Sprintf("bg/fg contrast ratio %.2f:1 meets AA but not AAA (%.1f:1 for AAA)",
				ratio, ContrastAAA),
		})
	}

	defined := t.Colors.Defined()
	for i := 0; i < len(defined); i++ {
		for j := i + 1; j < len(defined); j++ {
			d := color.Distance(defined[i].Color, defined[j].Color)
			if d < SimilarityThreshold {
				warnings = append(warnings, Warning{
					Level: LevelWarning,
					Message: fmt.Sprintf("colors %q and %q are very similar (distance %.1f)",
						defined[i].Name, defined[j].Name, d),
				})
			}
		}
	}
	return warnings
}

// Theme is the combined acceptance path: structural validation first, then
// the advisory pass. Warnings accompany a successful result; a structural
// failure returns no theme and no warnings.
func Theme(doc *theme.Document) (*theme.Theme, []Warning, error) {
	t, err := Structural(doc)
	if err != nil {
		return nil, nil, err
	}
	return t, Accessibility(t), nil
}
