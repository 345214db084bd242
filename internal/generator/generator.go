// Package generator renders a validated theme into the native configuration
// syntax of each supported target application. Every generator is a pure
// function of the theme: no I/O, deterministic output.
package generator

import (
	"fmt"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Generator renders one target application's configuration.
type Generator interface {
	// Name returns the unique format identifier, e.g. "kitty", "waybar".
	Name() string

	// Render produces the target's full configuration text. It must not
	// mutate or retain the theme.
	Render(t *theme.Theme) (string, error)
}

// UnknownFormatError is returned when no generator is registered under the
// requested name.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format: %q", e.Name)
}

// Func adapts a plain render function into a Generator.
type Func struct {
	name   string
	render func(t *theme.Theme) (string, error)
}

// NewFunc wraps a render function under a format name.
func NewFunc(name string, render func(t *theme.Theme) (string, error)) Func {
	return Func{name: name, render: render}
}

// Name implements Generator.
func (f Func) Name() string { return f.name }

// Render implements Generator.
func (f Func) Render(t *theme.Theme) (string, error) { return f.render(t) }
