package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new theme interactively",
	Long: `Walks through the fields of a theme one at a time and saves the
result into the themes directory. Optional fields can be skipped with
an empty answer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

// createField is one prompt in the wizard.
type createField struct {
	key         string
	prompt      string
	placeholder string
	optional    bool
	isColor     bool
}

func createFields() []createField {
	fields := []createField{
		{key: "name", prompt: "Theme name"},
		{key: "description", prompt: "Description", optional: true},
		{key: "variant", prompt: "Variant (dark/light)", optional: true},
	}
	placeholders := map[string]string{
		"bg": "#282828", "fg": "#ebdbb2", "accent": "#d79921",
		"red": "#cc241d", "green": "#98971a", "yellow": "#d79921",
		"blue": "#458588", "magenta": "#b16286", "cyan": "#689d6a",
	}
	for _, name := range theme.RequiredColorNames {
		fields = append(fields, createField{
			key: name, prompt: "Color " + name, placeholder: placeholders[name], isColor: true,
		})
	}
	for _, name := range theme.OptionalColorNames {
		fields = append(fields, createField{
			key: name, prompt: "Color " + name + " (optional)", optional: true, isColor: true,
		})
	}
	return fields
}

type createModel struct {
	fields   []createField
	index    int
	input    textinput.Model
	values   map[string]string
	errMsg   string
	done     bool
	quitting bool
}

func newCreateModel(name string) createModel {
	fields := createFields()
	values := make(map[string]string)
	if name != "" {
		// Name came from the command line; start at the next prompt.
		values["name"] = name
		fields = fields[1:]
	}
	ti := textinput.New()
	ti.Placeholder = fields[0].placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	return createModel{
		fields: fields,
		input:  ti,
		values: values,
	}
}

func (m createModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m createModel) handleEnter() (tea.Model, tea.Cmd) {
	field := m.fields[m.index]
	value := strings.TrimSpace(m.input.Value())

	if value == "" && !field.optional {
		m.errMsg = "this field is required"
		return m, nil
	}
	if value != "" {
		if field.isColor {
			if _, err := color.Parse(value); err != nil {
				m.errMsg = "expected a hex color like #1a2b3c"
				return m, nil
			}
		}
		if field.key == "variant" && value != theme.VariantDark && value != theme.VariantLight {
			m.errMsg = "variant must be dark or light"
			return m, nil
		}
		m.values[field.key] = value
	}

	m.errMsg = ""
	m.index++
	if m.index >= len(m.fields) {
		m.done = true
		return m, tea.Quit
	}
	m.input.SetValue("")
	m.input.Placeholder = m.fields[m.index].placeholder
	return m, textinput.Blink
}

func (m createModel) View() string {
	if m.done || m.quitting {
		return ""
	}
	field := m.fields[m.index]

	var b strings.Builder
	b.WriteString(titleStyle.Render("New theme") + "\n\n")
	fmt.Fprintf(&b, "%s (%d/%d)\n", field.prompt, m.index+1, len(m.fields))
	b.WriteString(m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(errorColor).Render(m.errMsg) + "\n")
	}
	b.WriteString(mutedStyle.Render("enter to confirm, esc to abort") + "\n")
	return b.String()
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	p := tea.NewProgram(newCreateModel(name))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run wizard: %w", err)
	}
	m, ok := finalModel.(createModel)
	if !ok || !m.done {
		fmt.Println(mutedStyle.Render("aborted, nothing saved"))
		return nil
	}

	doc := &theme.Document{
		Name:        m.values["name"],
		Description: m.values["description"],
		Variant:     m.values["variant"],
	}
	for _, name := range append(append([]string{}, theme.RequiredColorNames...), theme.OptionalColorNames...) {
		if v, ok := m.values[name]; ok {
			value := v
			doc.Colors.Set(name, &value)
		}
	}

	t, warnings, err := validateTheme(doc)
	if err != nil {
		return err
	}
	printWarnings(warnings)

	path, err := theme.Save(t, resolveThemesDir(cfg))
	if err != nil {
		return err
	}
	fmt.Printf("%s saved %s\n", okMark(), path)
	fmt.Printf("try: themectl preview %s\n", t.Name)
	return nil
}
