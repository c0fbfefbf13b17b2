package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuAction is one entry in a record's action menu. key is a single-key
// shortcut; destructive entries are drawn in red.
type menuAction struct {
	label       string
	key         string
	destructive bool
	fn          func() tea.Cmd
}

// actionMenuView lists what can be done to the record it was opened on.
type actionMenuView struct {
	state   *SharedState
	record  string
	cursor  int
	actions []menuAction
}

func newActionMenuView(state *SharedState, record string, actions []menuAction) *actionMenuView {
	return &actionMenuView{state: state, record: record, actions: actions}
}

func (v *actionMenuView) ID() ViewID    { return ViewActionMenu }
func (v *actionMenuView) Title() string { return "Actions" }

func (v *actionMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *actionMenuView) Init() tea.Cmd { return nil }

func (v *actionMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch k := km.String(); k {
	case "esc":
		return v, popView()
	case "up", "k":
		v.cursor = max(v.cursor-1, 0)
	case "down", "j":
		v.cursor = min(v.cursor+1, len(v.actions)-1)
	case "enter":
		return v, v.run(v.cursor)
	default:
		for i := range v.actions {
			if v.actions[i].key == k {
				v.cursor = i
				return v, v.run(i)
			}
		}
	}
	return v, nil
}

func (v *actionMenuView) run(i int) tea.Cmd {
	if i < 0 || i >= len(v.actions) {
		return nil
	}
	return v.actions[i].fn()
}

func (v *actionMenuView) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s\n\n", formatter.StyleHeader.Render("ACTIONS"), formatter.Dim("· "+v.record))

	for i, a := range v.actions {
		marker, style := "  ", formatter.StyleFg
		if i == v.cursor {
			marker, style = formatter.StyleGreen.Render("▸ "), formatter.StyleBold
		}
		if a.destructive {
			style = style.Foreground(formatter.ColorRed)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, formatter.Dim(a.key), style.Render(a.label))
	}
	return b.String()
}
