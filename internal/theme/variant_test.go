package theme

import (
	"testing"

	"github.com/huffs-projects/themectl/internal/color"
)

func darkFixture() *Theme {
	gray := color.MustParse("#928374")
	return &Theme{
		Name:        "gruvbox-dark",
		Description: "Retro groove color scheme",
		Variant:     VariantDark,
		Colors: Palette{
			BG:      color.MustParse("#282828"),
			FG:      color.MustParse("#ebdbb2"),
			Accent:  color.MustParse("#d79921"),
			Red:     color.MustParse("#cc241d"),
			Green:   color.MustParse("#98971a"),
			Yellow:  color.MustParse("#d79921"),
			Blue:    color.MustParse("#458588"),
			Magenta: color.MustParse("#b16286"),
			Cyan:    color.MustParse("#689d6a"),
			Gray:    &gray,
		},
	}
}

func TestGenerateVariantInvalid(t *testing.T) {
	if _, err := GenerateVariant(darkFixture(), "dusk"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestGenerateVariantSamePolarity(t *testing.T) {
	src := darkFixture()
	out, err := GenerateVariant(src, VariantDark)
	if err != nil {
		t.Fatalf("GenerateVariant() error: %v", err)
	}
	if out.Name != "gruvbox-dark" {
		t.Errorf("Name = %q", out.Name)
	}
	if out.Colors.BG != src.Colors.BG || out.Colors.FG != src.Colors.FG {
		t.Error("same-polarity variant should keep the palette")
	}
}

func TestGenerateVariantInversion(t *testing.T) {
	src := darkFixture()
	out, err := GenerateVariant(src, VariantLight)
	if err != nil {
		t.Fatalf("GenerateVariant() error: %v", err)
	}

	if out.Name != "gruvbox-light" {
		t.Errorf("Name = %q, want gruvbox-light", out.Name)
	}
	if out.Variant != VariantLight {
		t.Errorf("Variant = %q", out.Variant)
	}
	if !out.Colors.BG.IsLight() {
		t.Errorf("light variant bg %s should be light", out.Colors.BG.Hex())
	}
	if out.Colors.FG.IsLight() {
		t.Errorf("light variant fg %s should be dark", out.Colors.FG.Hex())
	}
	if out.Colors.Gray == nil {
		t.Fatal("optional colors should survive inversion")
	}
	if *out.Colors.Gray == *src.Colors.Gray {
		t.Error("optional colors should be adjusted, not copied")
	}
	if out.Description == src.Description {
		t.Error("description should note the derived variant")
	}

	// Source must be untouched.
	if src.Name != "gruvbox-dark" || src.Colors.BG.Hex() != "#282828" {
		t.Error("GenerateVariant mutated its input")
	}
}
