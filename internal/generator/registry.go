package generator

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Registry maps format names to generators. Lookup is case-insensitive.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator // key: lower-case format name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(g Generator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(g.Name())
	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator already registered: %s", name)
	}

	r.generators[name] = g
	return nil
}

// Get retrieves a generator by format name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.generators[strings.ToLower(name)]
	if !exists {
		return nil, &UnknownFormatError{Name: name}
	}

	return g, nil
}

// Names returns all registered format names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders one format by name.
func (r *Registry) Render(t *theme.Theme, format string) (string, error) {
	g, err := r.Get(format)
	if err != nil {
		return "", err
	}
	return g.Render(t)
}

// Result is the outcome of one generator in a batch render.
type Result struct {
	Name    string
	Content string
	Err     error
}

// RenderAll invokes every registered generator in name order. A failing
// generator is recorded in its Result and does not abort the rest.
func (r *Registry) RenderAll(t *theme.Theme) []Result {
	names := r.Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		g, err := r.Get(name)
		if err != nil {
			results = append(results, Result{Name: name, Err: err})
			continue
		}
		content, err := g.Render(t)
		if err != nil {
			results = append(results, Result{Name: name, Err: fmt.Errorf("generator %s: %w", name, err)})
			continue
		}
		results = append(results, Result{Name: name, Content: content})
	}
	return results
}

// Default returns a registry with every built-in format registered.
func Default() *Registry {
	r := NewRegistry()
	for _, g := range []Generator{
		NewFunc("kitty", Kitty),
		NewFunc("waybar", Waybar),
		NewFunc("neovim", Neovim),
		NewFunc("starship", Starship),
		NewFunc("mako", Mako),
		NewFunc("hyprland", Hyprland),
		NewFunc("hyprpaper", Hyprpaper),
		NewFunc("wofi", Wofi),
		NewFunc("wlogout", Wlogout),
		NewFunc("fastfetch", Fastfetch),
		NewFunc("nix", Nix),
		NewFunc("yazi", Yazi),
		NewFunc("gtk", GTK),
		NewFunc("btop", Btop),
		NewFunc("git", Git),
	} {
		// Names are unique literals above; Register cannot fail here.
		_ = r.Register(g)
	}
	return r
}
