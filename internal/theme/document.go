package theme

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Document is the raw TOML shape of a theme file, before validation. Color
// values are still strings and required fields may be missing; the validator
// turns a Document into a Theme.
type Document struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description,omitempty"`
	Variant     string        `toml:"variant,omitempty"`
	Colors      ColorDoc      `toml:"colors"`
	Properties  PropertiesDoc `toml:"properties"`
}

// ColorDoc holds the colors section as written. Pointers distinguish a
// missing key from an empty value.
type ColorDoc struct {
	BG      *string `toml:"bg"`
	FG      *string `toml:"fg"`
	Accent  *string `toml:"accent"`
	Red     *string `toml:"red"`
	Green   *string `toml:"green"`
	Yellow  *string `toml:"yellow"`
	Blue    *string `toml:"blue"`
	Magenta *string `toml:"magenta"`
	Cyan    *string `toml:"cyan"`
	Orange  *string `toml:"orange"`
	Purple  *string `toml:"purple"`
	Pink    *string `toml:"pink"`
	White   *string `toml:"white"`
	Black   *string `toml:"black"`
	Gray    *string `toml:"gray"`
}

// Set stores a raw string under a color key. Unknown names are ignored.
func (c *ColorDoc) Set(name string, v *string) {
	switch name {
	case "bg":
		c.BG = v
	case "fg":
		c.FG = v
	case "accent":
		c.Accent = v
	case "red":
		c.Red = v
	case "green":
		c.Green = v
	case "yellow":
		c.Yellow = v
	case "blue":
		c.Blue = v
	case "magenta":
		c.Magenta = v
	case "cyan":
		c.Cyan = v
	case "orange":
		c.Orange = v
	case "purple":
		c.Purple = v
	case "pink":
		c.Pink = v
	case "white":
		c.White = v
	case "black":
		c.Black = v
	case "gray":
		c.Gray = v
	}
}

// Get returns the raw string for a color key, or nil when absent.
func (c *ColorDoc) Get(name string) *string {
	switch name {
	case "bg":
		return c.BG
	case "fg":
		return c.FG
	case "accent":
		return c.Accent
	case "red":
		return c.Red
	case "green":
		return c.Green
	case "yellow":
		return c.Yellow
	case "blue":
		return c.Blue
	case "magenta":
		return c.Magenta
	case "cyan":
		return c.Cyan
	case "orange":
		return c.Orange
	case "purple":
		return c.Purple
	case "pink":
		return c.Pink
	case "white":
		return c.White
	case "black":
		return c.Black
	case "gray":
		return c.Gray
	}
	return nil
}

// PropertiesDoc holds the optional numeric knobs. An absent [properties]
// section leaves every pointer nil, which is distinct from an explicit zero.
type PropertiesDoc struct {
	BorderRadius      *uint    `toml:"border_radius"`
	BorderWidth       *uint    `toml:"border_width"`
	ShadowBlur        *uint    `toml:"shadow_blur"`
	AnimationDuration *float64 `toml:"animation_duration"`
	Spacing           *uint    `toml:"spacing"`
}

// ParseDocument decodes theme source text into its raw form. Syntax errors
// surface here; field-level problems are the validator's job.
func ParseDocument(content []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("invalid theme TOML: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and decodes a theme file.
func LoadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	doc, err := ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Encode renders a Theme back into its TOML source form. Used by init,
// create, and variant generation when persisting themes.
func Encode(t *Theme) ([]byte, error) {
	doc := Document{
		Name:        t.Name,
		Description: t.Description,
		Variant:     t.Variant,
	}
	for _, name := range RequiredColorNames {
		c, _ := t.Colors.Get(name)
		hex := c.Hex()
		doc.Colors.Set(name, &hex)
	}
	for _, name := range OptionalColorNames {
		if c, ok := t.Colors.Get(name); ok {
			hex := c.Hex()
			doc.Colors.Set(name, &hex)
		}
	}
	doc.Properties = PropertiesDoc{
		BorderRadius:      t.Properties.BorderRadius,
		BorderWidth:       t.Properties.BorderWidth,
		ShadowBlur:        t.Properties.ShadowBlur,
		AnimationDuration: t.Properties.AnimationDuration,
		Spacing:           t.Properties.Spacing,
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme %q: %w", t.Name, err)
	}
	return out, nil
}
