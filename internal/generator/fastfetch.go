package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

// Fastfetch renders config.jsonc. The comment header makes this JSONC, so
// the document is built as text rather than via encoding/json. Fastfetch
// takes named ANSI colors, not hex, so each slot carries the name of the
// palette role nearest to the theme color it represents.
func Fastfetch(t *theme.Theme) (string, error) {
	var b strings.Builder

	accent := nearestANSI(t, t.Colors.Accent)
	logo2 := nearestANSI(t, t.Colors.Blue)
	if logo2 == accent {
		logo2 = "blue"
	}

	fmt.Fprintf(&b, "// Fastfetch theme: %s\n", t.Name)
	b.WriteString("{\n")
	b.WriteString("  \"$schema\": \"https://github.com/fastfetch-cli/fastfetch/raw/dev/doc/json_schema.json\",\n")
	b.WriteString("  \"display\": {\n")
	b.WriteString("    \"color\": {\n")
	fmt.Fprintf(&b, "      \"keys\": \"%s\",\n", accent)
	fmt.Fprintf(&b, "      \"title\": \"%s\",\n", accent)
	b.WriteString("      \"output\": \"default\"\n")
	b.WriteString("    },\n")
	b.WriteString("    \"separator\": \" \"\n")
	b.WriteString("  },\n")
	b.WriteString("  \"logo\": {\n")
	b.WriteString("    \"color\": {\n")
	fmt.Fprintf(&b, "      \"1\": \"%s\",\n", accent)
	fmt.Fprintf(&b, "      \"2\": \"%s\"\n", logo2)
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String(), nil
}

// nearestANSI finds the ANSI name of the standard palette entry closest to
// c, using the same Euclidean metric as the validator.
func nearestANSI(t *theme.Theme, c color.Color) string {
	candidates := []struct {
		name string
		c    color.Color
	}{
		{"red", t.Colors.Red},
		{"green", t.Colors.Green},
		{"yellow", t.Colors.Yellow},
		{"blue", t.Colors.Blue},
		{"magenta", t.Colors.Magenta},
		{"cyan", t.Colors.Cyan},
	}
	best := candidates[0].name
	bestDist := color.Distance(c, candidates[0].c)
	for _, cand := range candidates[1:] {
		if d := color.Distance(c, cand.c); d < bestDist {
			best, bestDist = cand.name, d
		}
	}
	return best
}
