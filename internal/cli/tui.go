package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// TemplateListModel is the bubbletea model for interactive template
// selection in the new command.
type TemplateListModel struct {
	Templates []Template
	Cursor    int
	Selected  *Template
}

// NewTemplateListModel creates a new template list model.
func NewTemplateListModel(ts []Template) TemplateListModel {
	return TemplateListModel{Templates: ts}
}

func (m TemplateListModel) Init() tea.Cmd {
	return nil
}

func (m TemplateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Templates)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Templates[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TemplateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, t := range m.Templates {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-10s  %s", cursor, t.Name, listDimStyle.Render(t.Description))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Templates))))

	return b.String()
}

// pickTemplate runs the interactive template picker and returns the chosen
// template, or false if the user quit without selecting.
func pickTemplate() (Template, bool, error) {
	model, err := tea.NewProgram(NewTemplateListModel(templates)).Run()
	if err != nil {
		return Template{}, false, fmt.Errorf("run template picker: %w", err)
	}
	final, ok := model.(TemplateListModel)
	if !ok || final.Selected == nil {
		return Template{}, false, nil
	}
	return *final.Selected, true, nil
}
