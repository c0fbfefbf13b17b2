package cli

import (
	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView hosts a huh form as a dialog over the active tab. Once the
// form completes, the dialog closes and the command from done runs.
type wizardView struct {
	state *SharedState
	form  *huh.Form
	title string
	done  func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{state: state, form: form, title: title, done: done}
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.title }

func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *wizardView) Init() tea.Cmd { return v.form.Init() }

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
		return v, closeThen(note("Cancelled."))
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.done != nil {
			next = v.done()
		}
		return v, closeThen(tea.Batch(cmd, next))
	case huh.StateAborted:
		return v, closeThen(note("Cancelled."))
	}
	return v, cmd
}

func (v *wizardView) View() string {
	return "\n  " + formatter.StyleHeader.Render(v.title) + "\n\n" + v.form.View()
}
