package color

import (
	"errors"
	"math"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "black with hash", input: "#000000", want: Color{0, 0, 0}},
		{name: "white with hash", input: "#ffffff", want: Color{255, 255, 255}},
		{name: "red", input: "#ff0000", want: Color{255, 0, 0}},
		{name: "green", input: "#00ff00", want: Color{0, 255, 0}},
		{name: "blue", input: "#0000ff", want: Color{0, 0, 255}},
		{name: "gruvbox bg", input: "#282828", want: Color{40, 40, 40}},
		{name: "gruvbox fg", input: "#ebdbb2", want: Color{235, 219, 178}},
		{name: "without hash", input: "282828", want: Color{40, 40, 40}},
		{name: "upper case", input: "#ABCDEF", want: Color{171, 205, 239}},
		{name: "mixed case without hash", input: "AbCdEf", want: Color{171, 205, 239}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{"", "#", "#ff", "#ffff", "#fffffff", "gggggg", "#gggggg", "#12345", "12345", " ffffff", "#ffffff "}

	for _, input := range inputs {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should fail", input)
			continue
		}
		var invErr *InvalidFormatError
		if !errors.As(err, &invErr) {
			t.Errorf("Parse(%q) error = %T, want *InvalidFormatError", input, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Parsing the canonical form back must be stable.
	inputs := []string{"#282828", "ebdbb2", "#ABCDEF", "000000", "#ffffff"}
	for _, input := range inputs {
		c, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		again, err := Parse(c.Hex())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.Hex(), err)
		}
		if again.Hex() != c.Hex() {
			t.Errorf("round trip of %q changed: %q -> %q", input, c.Hex(), again.Hex())
		}
	}
}

func TestHexIsLowerCase(t *testing.T) {
	c := MustParse("#ABCDEF")
	if c.Hex() != "#abcdef" {
		t.Errorf("Hex() = %q, want %q", c.Hex(), "#abcdef")
	}
}

func TestLighten(t *testing.T) {
	if got := MustParse("#000000").Lighten(1.0); got.Hex() != "#ffffff" {
		t.Errorf("full lighten of black = %s, want #ffffff", got)
	}
	if got := MustParse("#282828").Lighten(0.0); got.Hex() != "#282828" {
		t.Errorf("zero lighten changed color: %s", got)
	}
	if got := MustParse("#808080").Lighten(0.5); got == MustParse("#808080") {
		t.Error("lighten of mid-tone should change the color")
	}
}

func TestDarken(t *testing.T) {
	if got := MustParse("#ffffff").Darken(1.0); got.Hex() != "#000000" {
		t.Errorf("full darken of white = %s, want #000000", got)
	}
	if got := MustParse("#282828").Darken(0.0); got.Hex() != "#282828" {
		t.Errorf("zero darken changed color: %s", got)
	}
}

func TestDim(t *testing.T) {
	tests := []struct {
		input  string
		amount float64
		want   string
	}{
		{"#ffffff", 0.5, "#7f7f7f"},
		{"#ffffff", 0.0, "#000000"},
		{"#ffffff", 1.0, "#ffffff"},
		{"#ff0000", 0.5, "#7f0000"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.input).Dim(tt.amount); got.Hex() != tt.want {
			t.Errorf("Dim(%s, %v) = %s, want %s", tt.input, tt.amount, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	a := MustParse("#282828")
	b := MustParse("#ebdbb2")

	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance(x, x) = %v, want 0", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance is not symmetric")
	}

	// Black to white is sqrt(3*255^2).
	max := Distance(MustParse("#000000"), MustParse("#ffffff"))
	want := math.Sqrt(3 * 255 * 255)
	if math.Abs(max-want) > 1e-9 {
		t.Errorf("Distance(black, white) = %v, want %v", max, want)
	}
}

func TestRelativeLuminance(t *testing.T) {
	if l := MustParse("#000000").RelativeLuminance(); l != 0 {
		t.Errorf("luminance of black = %v, want 0", l)
	}
	if l := MustParse("#ffffff").RelativeLuminance(); math.Abs(l-1.0) > 1e-9 {
		t.Errorf("luminance of white = %v, want 1.0", l)
	}
}

func TestContrastRatio(t *testing.T) {
	white := MustParse("#ffffff")
	black := MustParse("#000000")

	if r := ContrastRatio(white, black); math.Abs(r-21.0) > 1e-9 {
		t.Errorf("contrast of black/white = %v, want 21.0", r)
	}
	if r := ContrastRatio(white, white); r != 1.0 {
		t.Errorf("contrast of x/x = %v, want 1.0", r)
	}

	a := MustParse("#458588")
	b := MustParse("#d79921")
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("ContrastRatio is not symmetric")
	}
}

func TestContrastRatioGruvboxReference(t *testing.T) {
	// Hand-computed WCAG reference for the gruvbox bg/fg pair.
	bg := MustParse("#282828")
	fg := MustParse("#ebdbb2")

	ratio := ContrastRatio(bg, fg)
	if math.Abs(ratio-10.75) > 0.05 {
		t.Errorf("contrast of #282828/#ebdbb2 = %v, want ~10.75", ratio)
	}
	if ratio < 4.5 {
		t.Errorf("gruvbox pair should pass WCAG AA, got %v", ratio)
	}
}

func TestIsLight(t *testing.T) {
	if MustParse("#282828").IsLight() {
		t.Error("#282828 should be dark")
	}
	if !MustParse("#ebdbb2").IsLight() {
		t.Error("#ebdbb2 should be light")
	}
}
