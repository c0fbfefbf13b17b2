package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/listview"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listSource describes one record kind to the generic list tab: how to load
// it, how to draw a row or card, and which actions apply to a record.
type listSource[T any, S listview.Status] struct {
	id       ViewID
	noun     string
	statuses []S

	load     func(ctx context.Context, app *App, req contract.ListRequest[S]) ([]T, []formatter.StatCard, error)
	get      func(ctx context.Context, app *App, id string) (T, error)
	recordID func(T) string
	label    func(T) string

	columns []table.Column
	row     func(T) table.Row
	card    func(T) string
	detail  func(T) string

	actions func(state *SharedState, item T) []menuAction
	create  func(state *SharedState) tea.Cmd
}

// listLoadedMsg carries the records matching req for one tab. selected is
// the record open in the detail panel when the filter hides it.
type listLoadedMsg[T any, S listview.Status] struct {
	id         ViewID
	req        contract.ListRequest[S]
	items      []T
	cards      []formatter.StatCard
	selected   T
	selectedOK bool
	err        error
}

func (m listLoadedMsg[T, S]) target() ViewID { return m.id }

// listView is a top-level tab over one record kind.
type listView[T any, S listview.Status] struct {
	state *SharedState
	src   listSource[T, S]

	req    contract.ListRequest[S]
	items  []T
	cards  []formatter.StatCard
	cursor int
	err    error

	// selected is the panel record when it is filtered out of items.
	selected   T
	selectedOK bool

	search    textinput.Model
	searching bool
}

func newListView[T any, S listview.Status](state *SharedState, src listSource[T, S]) *listView[T, S] {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search " + src.noun
	ti.CharLimit = 64
	return &listView[T, S]{
		state:  state,
		src:    src,
		req:    contract.NewListRequest[S](),
		search: ti,
	}
}

func (v *listView[T, S]) ID() ViewID    { return v.src.id }
func (v *listView[T, S]) Title() string { return tabLabels[v.src.id] }

func (v *listView[T, S]) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "actions")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
}

// CapturesInput reports whether the search box owns the keyboard.
func (v *listView[T, S]) CapturesInput() bool { return v.searching }

func (v *listView[T, S]) Init() tea.Cmd { return v.reload() }

func (v *listView[T, S]) reload() tea.Cmd {
	app, req, src := v.state.App, v.req, v.src
	selectedID, _ := v.state.SelectedIn(src.id)
	return func() tea.Msg {
		ctx := context.Background()
		items, cards, err := src.load(ctx, app, req)
		msg := listLoadedMsg[T, S]{id: src.id, req: req, items: items, cards: cards, err: err}
		if err != nil || selectedID == "" || src.get == nil {
			return msg
		}
		for _, item := range items {
			if src.recordID(item) == selectedID {
				return msg
			}
		}
		if rec, getErr := src.get(ctx, app, selectedID); getErr == nil {
			msg.selected, msg.selectedOK = rec, true
		}
		return msg
	}
}

func (v *listView[T, S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg[T, S]:
		// A load for an older filter or query arrived after a newer one.
		if msg.req != v.req {
			return v, nil
		}
		v.err = msg.err
		if msg.err == nil {
			v.items = msg.items
			v.cards = msg.cards
			v.selected, v.selectedOK = msg.selected, msg.selectedOK
		}
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		return v, v.reload()

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateKeys(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *listView[T, S]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.req = v.req.WithQuery("")
		return v, v.reload()
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if q := v.search.Value(); q != v.req.Query {
		v.req = v.req.WithQuery(q)
		v.cursor = 0
		return v, tea.Batch(cmd, v.reload())
	}
	return v, cmd
}

func (v *listView[T, S]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case "enter":
		if item, ok := v.current(); ok {
			return v, openDetail(v.src.id, v.src.recordID(item))
		}
	case "a":
		if item, ok := v.current(); ok {
			actions := v.src.actions(v.state, item)
			return v, pushView(newActionMenuView(v.state, v.src.label(item), actions))
		}
	case "n":
		if v.src.create != nil {
			return v, v.src.create(v.state)
		}
	case "f":
		v.req.Status = v.req.Status.Next(v.src.statuses)
		v.cursor = 0
		return v, v.reload()
	case "/":
		v.searching = true
		return v, v.search.Focus()
	}
	return v, nil
}

func (v *listView[T, S]) current() (T, bool) {
	var zero T
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return zero, false
	}
	return v.items[v.cursor], true
}

func (v *listView[T, S]) clampCursor() {
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Detail renders the record with id, or "" when it does not exist. The
// record stays visible when the filter or search hides it from the list.
func (v *listView[T, S]) Detail(id string) string {
	for _, item := range v.items {
		if v.src.recordID(item) == id {
			return v.src.detail(item)
		}
	}
	if v.selectedOK && v.src.recordID(v.selected) == id {
		return v.src.detail(v.selected)
	}
	return ""
}

func (v *listView[T, S]) View() string {
	var b strings.Builder

	title := formatter.StyleHeader.Render(strings.ToUpper(tabLabels[v.src.id]))
	filter := formatter.Dim("  status: ") + formatter.StyleFg.Render(v.req.Status.String())
	if v.req.Query != "" && !v.searching {
		filter += formatter.Dim("  search: ") + formatter.StyleFg.Render(v.req.Query)
	}
	b.WriteString(title + filter + "\n")

	if v.searching {
		b.WriteString(v.search.View() + "\n")
	}
	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}

	b.WriteString(formatter.RenderStatCards(v.cards, v.state.Width) + "\n")

	if len(v.items) == 0 {
		b.WriteString(formatter.Dim("No " + v.src.noun + " match your filters."))
		return b.String()
	}

	if v.state.Wide() {
		b.WriteString(v.renderTable())
	} else {
		b.WriteString(v.renderCards())
	}
	return b.String()
}

func (v *listView[T, S]) renderTable() string {
	rows := make([]table.Row, 0, len(v.items))
	for _, item := range v.items {
		rows = append(rows, v.src.row(item))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#3b4048")).
		Bold(false)

	t := table.New(
		table.WithColumns(v.src.columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
	t.SetCursor(v.cursor)
	return t.View()
}

func (v *listView[T, S]) renderCards() string {
	width := v.state.Width - 2
	if width < 20 {
		width = 20
	}
	cards := make([]string, 0, len(v.items))
	for i, item := range v.items {
		cards = append(cards, formatter.RenderCard(v.src.card(item), width, i == v.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
