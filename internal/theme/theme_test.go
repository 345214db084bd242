package theme

import (
	"testing"

	"github.com/huffs-projects/themectl/internal/color"
)

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gruvbox-dark", VariantDark},
		{"gruvbox-darkest", VariantDark},
		{"solarized-light", VariantLight},
		{"solarized-lightest", VariantLight},
		{"Gruvbox-Dark", VariantDark},
		{"gruvbox", ""},
		{"darkroom", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectVariant(tt.name); got != tt.want {
				t.Errorf("DetectVariant(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gruvbox-dark", "gruvbox"},
		{"gruvbox-darkest", "gruvbox"},
		{"solarized-light", "solarized"},
		{"nord", "nord"},
		{"darkroom", "darkroom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseName(tt.name); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestEffectiveVariant(t *testing.T) {
	declared := &Theme{Name: "gruvbox-light", Variant: VariantDark}
	if got := declared.EffectiveVariant(); got != VariantDark {
		t.Errorf("declared variant should win, got %q", got)
	}

	inferred := &Theme{Name: "gruvbox-light"}
	if got := inferred.EffectiveVariant(); got != VariantLight {
		t.Errorf("expected inferred light, got %q", got)
	}

	none := &Theme{Name: "gruvbox"}
	if got := none.EffectiveVariant(); got != "" {
		t.Errorf("expected no variant, got %q", got)
	}
}

func TestIsDark(t *testing.T) {
	darkBG := Palette{BG: color.MustParse("#282828"), FG: color.MustParse("#ebdbb2")}
	lightBG := Palette{BG: color.MustParse("#fbf1c7"), FG: color.MustParse("#3c3836")}

	tests := []struct {
		name  string
		theme Theme
		want  bool
	}{
		{"declared dark wins over light bg", Theme{Name: "x", Variant: VariantDark, Colors: lightBG}, true},
		{"declared light wins over dark bg", Theme{Name: "x", Variant: VariantLight, Colors: darkBG}, false},
		{"name suffix dark", Theme{Name: "x-dark", Colors: lightBG}, true},
		{"luminance fallback dark", Theme{Name: "x", Colors: darkBG}, true},
		{"luminance fallback light", Theme{Name: "x", Colors: lightBG}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.theme.IsDark(); got != tt.want {
				t.Errorf("IsDark() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteGet(t *testing.T) {
	orange := color.MustParse("#d65d0e")
	p := Palette{
		BG:     color.MustParse("#282828"),
		Orange: &orange,
	}

	if c, ok := p.Get("bg"); !ok || c.Hex() != "#282828" {
		t.Errorf("Get(bg) = %v, %v", c, ok)
	}
	if c, ok := p.Get("orange"); !ok || c.Hex() != "#d65d0e" {
		t.Errorf("Get(orange) = %v, %v", c, ok)
	}
	if _, ok := p.Get("purple"); ok {
		t.Error("absent optional color should report ok=false")
	}
	if _, ok := p.Get("chartreuse"); ok {
		t.Error("unknown name should report ok=false")
	}
}

func TestDefinedOrderAndPresence(t *testing.T) {
	gray := color.MustParse("#928374")
	p := Palette{Gray: &gray}

	defined := p.Defined()
	if len(defined) != len(RequiredColorNames)+1 {
		t.Fatalf("expected %d defined colors, got %d", len(RequiredColorNames)+1, len(defined))
	}
	for i, name := range RequiredColorNames {
		if defined[i].Name != name {
			t.Errorf("defined[%d] = %q, want %q", i, defined[i].Name, name)
		}
	}
	if last := defined[len(defined)-1]; last.Name != "gray" {
		t.Errorf("expected gray last, got %q", last.Name)
	}
}
