package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskpick/pkg/manager"
)

// App wraps the Model with bubbletea components.
type App struct {
	*Model
	filterInput textinput.Model
}

// NewApp creates a new picker application.
func NewApp(sources []manager.Source) *App {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 60
	ti.Width = 30
	ti.Prompt = "/ "

	return &App{
		Model:       NewModel(sources),
		filterInput: ti,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.ready = true

	case tea.KeyMsg:
		// Filter input mode captures everything except enter/esc.
		if a.filtering {
			switch msg.String() {
			case "enter":
				a.filtering = false
				a.filterInput.Blur()
				return a, nil
			case "esc":
				a.filtering = false
				a.filterInput.Blur()
				a.filterInput.SetValue("")
				a.SetFilter("")
				return a, nil
			default:
				var cmd tea.Cmd
				a.filterInput, cmd = a.filterInput.Update(msg)
				a.SetFilter(a.filterInput.Value())
				return a, cmd
			}
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Cancel):
			if a.filterText != "" {
				a.filterInput.SetValue("")
				a.SetFilter("")
				return a, nil
			}
			return a, tea.Quit

		case key.Matches(msg, a.keys.Enter):
			if a.Select() {
				return a, tea.Quit
			}

		case key.Matches(msg, a.keys.Filter):
			a.filtering = true
			a.filterInput.Focus()
			return a, textinput.Blink

		case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.VimUp):
			a.MoveCursor(-1)

		case key.Matches(msg, a.keys.Down), key.Matches(msg, a.keys.VimDown):
			a.MoveCursor(1)

		case key.Matches(msg, a.keys.Home), key.Matches(msg, a.keys.VimTop):
			a.GoToTop()

		case key.Matches(msg, a.keys.End), key.Matches(msg, a.keys.VimBot):
			a.GoToBottom()
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder

	mgr := ""
	if len(a.sources) > 0 {
		mgr = " · " + a.sources[0].Manager.String()
	}
	b.WriteString(a.styles.Header.Render("taskpick"+mgr) + "\n")

	if a.filtering || a.filterText != "" {
		b.WriteString(a.styles.FilterPrompt.Render(a.filterInput.View()) + "\n")
	} else {
		b.WriteString("\n")
	}

	visible := a.visibleHeight()
	end := a.scroll + visible
	if end > len(a.rows) {
		end = len(a.rows)
	}

	if len(a.rows) == 0 {
		b.WriteString(a.styles.ItemDesc.Render("  nothing to run") + "\n")
	}

	for i := a.scroll; i < end; i++ {
		r := a.rows[i]
		if r.header {
			src := a.sources[r.source]
			title := src.Title
			if strings.TrimSpace(title) == "" {
				title = src.Dir
			}
			line := lipgloss.JoinHorizontal(lipgloss.Left,
				a.styles.SourceTitle.Render(title),
				" ",
				a.styles.SourceDir.Render(src.Dir),
			)
			b.WriteString(line + "\n")
			continue
		}

		label := r.item.Label()
		desc := r.item.Description()
		if desc != "" {
			desc = "  " + a.styles.ItemDesc.Render(desc)
		}

		if i == a.cursor {
			b.WriteString(a.styles.ItemSelected.Render("▸ "+label) + desc + "\n")
		} else {
			b.WriteString(a.styles.Item.Render(label) + desc + "\n")
		}
	}

	b.WriteString("\n" + a.renderHelp())

	return b.String()
}

// renderHelp renders the footer keybinding hints.
func (a *App) renderHelp() string {
	pairs := []struct{ k, d string }{
		{"↑/↓", "navigate"},
		{"enter", "run"},
		{"/", "filter"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s %s", a.styles.HelpKey.Render(p.k), a.styles.HelpDesc.Render(p.d)))
	}
	return a.styles.Footer.Render(strings.Join(parts, "  "))
}

// Pick runs the full-screen picker and returns the chosen source and
// item. Both are nil when the user dismissed the picker.
func Pick(sources []manager.Source) (*manager.Source, manager.Item, error) {
	app := NewApp(sources)

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, nil, err
	}

	if m, ok := final.(*App); ok {
		src, item := m.Selection()
		return src, item, nil
	}
	return nil, nil, nil
}
