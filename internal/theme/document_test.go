package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huffs-projects/themectl/internal/color"
)

const sampleTheme = `name = "gruvbox-dark"
description = "Retro groove color scheme"
variant = "dark"

[colors]
bg = "#282828"
fg = "#ebdbb2"
accent = "#d79921"
red = "#cc241d"
green = "#98971a"
yellow = "#d79921"
blue = "#458588"
magenta = "#b16286"
cyan = "#689d6a"
gray = "#928374"

[properties]
border_radius = 4
animation_duration = 0.3
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	if doc.Name != "gruvbox-dark" {
		t.Errorf("Name = %q", doc.Name)
	}
	if doc.Variant != VariantDark {
		t.Errorf("Variant = %q", doc.Variant)
	}
	if doc.Colors.BG == nil || *doc.Colors.BG != "#282828" {
		t.Errorf("Colors.BG = %v", doc.Colors.BG)
	}
	if doc.Colors.Orange != nil {
		t.Error("absent optional color should stay nil")
	}
	if doc.Properties.BorderRadius == nil || *doc.Properties.BorderRadius != 4 {
		t.Errorf("BorderRadius = %v", doc.Properties.BorderRadius)
	}
	if doc.Properties.Spacing != nil {
		t.Error("absent property should stay nil")
	}
}

func TestParseDocumentSyntaxError(t *testing.T) {
	if _, err := ParseDocument([]byte("name = \"unterminated")); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestDocumentGetSet(t *testing.T) {
	var c ColorDoc
	v := "#123456"
	c.Set("magenta", &v)
	if got := c.Get("magenta"); got == nil || *got != v {
		t.Errorf("Get(magenta) = %v after Set", got)
	}
	if got := c.Get("nope"); got != nil {
		t.Errorf("Get(nope) = %v, want nil", got)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}

	// Build the typed theme by hand; validation lives in another package.
	orig := themeFromDoc(t, doc)
	encoded, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := ParseDocument(encoded)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if back.Name != orig.Name || back.Variant != orig.Variant {
		t.Errorf("round trip changed identity: %q/%q", back.Name, back.Variant)
	}
	if back.Colors.BG == nil || *back.Colors.BG != "#282828" {
		t.Errorf("round trip changed bg: %v", back.Colors.BG)
	}
	if back.Colors.Pink != nil {
		t.Error("round trip invented an optional color")
	}
}

func TestSaveAndFind(t *testing.T) {
	dir := t.TempDir()
	doc, err := ParseDocument([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	th := themeFromDoc(t, doc)

	path, err := Save(th, dir)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Base(path) != "gruvbox-dark.toml" {
		t.Errorf("unexpected file name %s", path)
	}

	found, err := FindThemeFile(dir, "gruvbox-dark")
	if err != nil {
		t.Fatalf("FindThemeFile() error: %v", err)
	}
	if found != path {
		t.Errorf("FindThemeFile() = %s, want %s", found, path)
	}
}

func TestFindThemeFileNested(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "community")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(nested, "nord.toml")
	if err := os.WriteFile(path, []byte("name = \"nord\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := FindThemeFile(dir, "nord")
	if err != nil {
		t.Fatalf("FindThemeFile() error: %v", err)
	}
	if found != path {
		t.Errorf("FindThemeFile() = %s, want %s", found, path)
	}

	if _, err := FindThemeFile(dir, "missing"); err == nil {
		t.Fatal("expected error for unknown theme")
	} else if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the theme: %v", err)
	}
}

func TestFindThemeFilesMissingDir(t *testing.T) {
	files, err := FindThemeFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if files != nil {
		t.Errorf("expected no files, got %v", files)
	}
}

// themeFromDoc converts a parsed document assuming all fields are valid.
func themeFromDoc(t *testing.T, doc *Document) *Theme {
	t.Helper()
	th := &Theme{Name: doc.Name, Description: doc.Description, Variant: doc.Variant}

	required := map[string]*color.Color{
		"bg": &th.Colors.BG, "fg": &th.Colors.FG, "accent": &th.Colors.Accent,
		"red": &th.Colors.Red, "green": &th.Colors.Green, "yellow": &th.Colors.Yellow,
		"blue": &th.Colors.Blue, "magenta": &th.Colors.Magenta, "cyan": &th.Colors.Cyan,
	}
	for name, dst := range required {
		raw := doc.Colors.Get(name)
		if raw == nil {
			t.Fatalf("fixture missing required color %s", name)
		}
		*dst = color.MustParse(*raw)
	}
	optional := map[string]**color.Color{
		"orange": &th.Colors.Orange, "purple": &th.Colors.Purple, "pink": &th.Colors.Pink,
		"white": &th.Colors.White, "black": &th.Colors.Black, "gray": &th.Colors.Gray,
	}
	for name, dst := range optional {
		if raw := doc.Colors.Get(name); raw != nil {
			c := color.MustParse(*raw)
			*dst = &c
		}
	}
	th.Properties = Properties{
		BorderRadius:      doc.Properties.BorderRadius,
		BorderWidth:       doc.Properties.BorderWidth,
		ShadowBlur:        doc.Properties.ShadowBlur,
		AnimationDuration: doc.Properties.AnimationDuration,
		Spacing:           doc.Properties.Spacing,
	}
	return th
}
