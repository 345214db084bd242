package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/huffs-projects/themectl/internal/theme"
)

func docFixture() *theme.Document {
	set := func(v string) *string { return &v }
	return &theme.Document{
		Name:    "gruvbox-dark",
		Variant: theme.VariantDark,
		Colors: theme.ColorDoc{
			BG:      set("#282828"),
			FG:      set("#ebdbb2"),
			Accent:  set("#fe8019"),
			Red:     set("#cc241d"),
			Green:   set("#98971a"),
			Yellow:  set("#d79921"),
			Blue:    set("#458588"),
			Magenta: set("#b16286"),
			Cyan:    set("#689d6a"),
		},
	}
}

func TestStructuralValid(t *testing.T) {
	th, err := Structural(docFixture())
	if err != nil {
		t.Fatalf("Structural() error: %v", err)
	}
	if th.Name != "gruvbox-dark" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Colors.BG.Hex() != "#282828" {
		t.Errorf("BG = %s", th.Colors.BG.Hex())
	}
	if th.Colors.Orange != nil {
		t.Error("absent optional color should stay nil")
	}
}

func TestStructuralMissingFields(t *testing.T) {
	doc := docFixture()
	doc.Name = "   "
	doc.Colors.BG = nil
	doc.Colors.Cyan = nil

	_, err := Structural(doc)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", len(verr.Problems), verr)
	}

	// Every missing field is named so the user can fix them all at once.
	for _, want := range []string{"name", "colors.bg", "colors.cyan"} {
		found := false
		for _, p := range verr.Problems {
			var missing *MissingFieldError
			if errors.As(p, &missing) && missing.Field == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no MissingFieldError for %q in %v", want, verr)
		}
	}
}

func TestStructuralInvalidColor(t *testing.T) {
	bad := "#2828"
	doc := docFixture()
	doc.Colors.Red = &bad

	_, err := Structural(doc)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	var invalid *InvalidColorError
	if !errors.As(verr.Problems[0], &invalid) {
		t.Fatalf("expected *InvalidColorError, got %v", verr.Problems[0])
	}
	if invalid.Field != "colors.red" || invalid.Value != bad {
		t.Errorf("got %+v", invalid)
	}
}

func TestStructuralInvalidVariant(t *testing.T) {
	doc := docFixture()
	doc.Variant = "dim"
	if _, err := Structural(doc); err == nil {
		t.Fatal("expected error for invalid variant")
	}
}

func TestStructuralNegativeAnimationDuration(t *testing.T) {
	neg := -0.5
	doc := docFixture()
	doc.Properties.AnimationDuration = &neg
	if _, err := Structural(doc); err == nil {
		t.Fatal("expected error for negative animation_duration")
	}
}

func TestAccessibilityCleanTheme(t *testing.T) {
	th, err := Structural(docFixture())
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range Accessibility(th) {
		if w.Level == LevelWarning {
			t.Errorf("unexpected warning: %s", w.Message)
		}
	}
}

func TestAccessibilityLowContrast(t *testing.T) {
	fg := "#3c3c3c"
	doc := docFixture()
	doc.Colors.FG = &fg

	th, err := Structural(doc)
	if err != nil {
		t.Fatal(err)
	}
	warnings := Accessibility(th)

	found := false
	for _, w := range warnings {
		if w.Level == LevelWarning && strings.Contains(w.Message, "contrast") {
			found = true
			if !strings.Contains(w.Message, "#282828") || !strings.Contains(w.Message, "#3c3c3c") {
				t.Errorf("contrast warning should name both colors: %s", w.Message)
			}
		}
	}
	if !found {
		t.Errorf("expected a contrast warning, got %v", warnings)
	}
}

func TestAccessibilitySimilarColors(t *testing.T) {
	near := "#cc241e"
	doc := docFixture()
	doc.Colors.Orange = &near // distance 1 from red

	th, err := Structural(doc)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, w := range Accessibility(th) {
		if w.Level == LevelWarning && strings.Contains(w.Message, "similar") {
			found = true
			if !strings.Contains(w.Message, `"red"`) || !strings.Contains(w.Message, `"orange"`) {
				t.Errorf("similarity warning should name both roles: %s", w.Message)
			}
		}
	}
	if !found {
		t.Error("expected a similarity warning for red/orange")
	}
}

func TestThemeCombined(t *testing.T) {
	th, warnings, err := Theme(docFixture())
	if err != nil {
		t.Fatalf("Theme() error: %v", err)
	}
	if th == nil {
		t.Fatal("expected a theme")
	}
	for _, w := range warnings {
		if w.Level == LevelWarning {
			t.Errorf("clean fixture produced warning: %s", w.Message)
		}
	}

	bad := docFixture()
	bad.Colors.FG = nil
	if _, _, err := Theme(bad); err == nil {
		t.Fatal("expected structural failure to propagate")
	}
}
