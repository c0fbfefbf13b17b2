package cli

import (
	"strings"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailPanelWidth is the width of the side panel when it fits beside the
// active tab.
const detailPanelWidth = 44

// appModel is the root bubbletea Model for the dashboard. It owns the five
// tabs, a stack of dialogs drawn above them, and the detail panel.
type appModel struct {
	state    *SharedState
	tabs     [tabCount]View
	active   ViewID
	overlays []View

	detailVP viewport.Model

	note     string
	noteErr  bool
	ticking  bool
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	vp := viewport.New(0, 0)
	vp.KeyMap = detailViewportKeyMap()

	return appModel{
		state: state,
		tabs: [tabCount]View{
			newJobsView(state),
			newLeadsView(state),
			newEstimatesView(state),
			newInvoicesView(state),
			newSettingsView(state),
		},
		active:   ViewJobs,
		detailVP: vp,
	}
}

// overlay returns the top dialog, or nil.
func (m *appModel) overlay() View {
	if len(m.overlays) == 0 {
		return nil
	}
	return m.overlays[len(m.overlays)-1]
}

func (m *appModel) activeTab() View {
	return m.tabs[m.active]
}

// updateOverlay forwards msg to the top dialog.
func (m *appModel) updateOverlay(msg tea.Msg) tea.Cmd {
	updated, cmd := m.overlay().Update(msg)
	m.overlays[len(m.overlays)-1] = updated.(View)
	return cmd
}

func (m *appModel) updateTab(id ViewID, msg tea.Msg) tea.Cmd {
	updated, cmd := m.tabs[id].Update(msg)
	m.tabs[id] = updated.(View)
	return cmd
}

// openOverlay sizes v to the terminal and starts it.
func (m *appModel) openOverlay(v View) tea.Cmd {
	if m.state.Width > 0 {
		updated, _ := v.Update(tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.ContentHeight()})
		v = updated.(View)
	}
	m.overlays = append(m.overlays, v)
	return v.Init()
}

func (m *appModel) popOverlay() {
	if len(m.overlays) > 0 {
		m.overlays = m.overlays[:len(m.overlays)-1]
	}
}

func (m *appModel) switchTab(id ViewID) {
	if id == m.active {
		return
	}
	m.active = id
	m.state.ClearSelection()
}

func (m *appModel) refreshAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, tabCount)
	for i := range m.tabs {
		cmds = append(cmds, m.updateTab(ViewID(i), refreshViewMsg{}))
	}
	return tea.Batch(cmds...)
}

// startTicking begins the toast prune loop unless it is already running.
func (m *appModel) startTicking() tea.Cmd {
	if m.ticking || m.state.App.Toasts == nil {
		return nil
	}
	m.ticking = true
	return toastTick()
}

// dismissLatestToast removes the newest notification from the toast strip.
func (m *appModel) dismissLatestToast() bool {
	bus := m.state.App.Toasts
	if bus == nil {
		return false
	}
	n, ok := bus.Latest()
	return ok && bus.Dismiss(n.ID)
}

// detail returns the panel content for the current selection, or "".
func (m *appModel) detail() string {
	id, ok := m.state.SelectedIn(m.active)
	if !ok {
		return ""
	}
	dv, ok := m.activeTab().(detailView)
	if !ok {
		return ""
	}
	return dv.Detail(id)
}

// syncDetail keeps the panel viewport in step with the selected record.
func (m *appModel) syncDetail() {
	content := m.detail()
	m.detailVP.SetContent(content)
	lines := strings.Count(content, "\n") + 1
	m.detailVP.Height = min(lines, m.state.ContentHeight())
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, tabCount)
	for _, t := range m.tabs {
		cmds = append(cmds, t.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncDetail()
	return m, cmd
}

func (m *appModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if m.overlay() != nil {
			return m.updateOverlay(tea.WindowSizeMsg{Width: msg.Width, Height: m.state.ContentHeight()})
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		return m.openOverlay(msg.view)

	case popViewMsg:
		m.popOverlay()
		return nil

	case replaceViewMsg:
		m.popOverlay()
		return m.openOverlay(msg.view)

	case wizardCompleteMsg:
		// Atomically pop the dialog and execute the follow-up command.
		m.popOverlay()
		return msg.nextCmd

	case refreshViewMsg:
		return m.refreshAll()

	case mutationDoneMsg:
		if msg.err != nil {
			m.note, m.noteErr = msg.err.Error(), true
			return nil
		}
		m.note = ""
		return tea.Batch(m.refreshAll(), m.startTicking())

	case openDetailMsg:
		m.state.Select(msg.kind, msg.id)
		m.detailVP.GotoTop()
		return nil

	case noteMsg:
		m.note, m.noteErr = msg.text, false
		return nil

	case toastTickMsg:
		if m.state.App.Toasts == nil || len(m.state.App.Toasts.Active()) == 0 {
			m.ticking = false
			return nil
		}
		return toastTick()

	case targetedMsg:
		return m.updateTab(msg.target(), msg)
	}

	// Anything else (cursor blink, form internals) goes to whatever has focus.
	if m.overlay() != nil {
		return m.updateOverlay(msg)
	}
	return m.updateTab(m.active, msg)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	m.note = ""

	if m.overlay() != nil {
		return m.updateOverlay(msg)
	}

	// The search box receives every character, including q and digits.
	if viewCapturesInput(m.activeTab()) {
		return m.updateTab(m.active, msg)
	}

	switch k := msg.String(); k {
	case "q":
		m.quitting = true
		return tea.Quit
	case "1", "2", "3", "4", "5":
		m.switchTab(ViewID(k[0] - '1'))
		return nil
	case "tab":
		m.switchTab((m.active + 1) % ViewID(tabCount))
		return nil
	case "shift+tab":
		m.switchTab((m.active + ViewID(tabCount) - 1) % ViewID(tabCount))
		return nil
	case "esc":
		m.state.ClearSelection()
		return nil
	case "x":
		if m.dismissLatestToast() {
			return nil
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detailVP, cmd = m.detailVP.Update(msg)
		return cmd
	}

	return m.updateTab(m.active, msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderBody()}

	if m.state.App.Toasts != nil {
		if toasts := renderToasts(m.state.App.Toasts.Active(), m.state.Width); toasts != "" {
			sections = append(sections, toasts)
		}
	}
	if m.note != "" {
		style := formatter.StyleYellow
		if m.noteErr {
			style = formatter.StyleRed
		}
		sections = append(sections, style.Render(m.note))
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	parts := []string{formatter.StylePurple.Bold(true).Render("foreman")}
	for i, label := range tabLabels {
		text := string(rune('1'+i)) + " " + label
		if ViewID(i) == m.active {
			parts = append(parts, formatter.StyleHeader.Render("["+text+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+text+" "))
		}
	}
	header := strings.Join(parts, " ")
	if v := m.overlay(); v != nil {
		header += " " + formatter.Dim("›") + " " + formatter.Bold(v.Title())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderBody() string {
	if v := m.overlay(); v != nil {
		return v.View()
	}

	body := m.activeTab().View()
	if m.detail() == "" {
		return body
	}

	vp := m.detailVP
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(0, 1)

	// Beside the tab when it fits, underneath otherwise.
	if m.state.Width-lipgloss.Width(body) >= detailPanelWidth+1 {
		vp.Width = detailPanelWidth - 4
		return lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panelStyle.Render(vp.View()))
	}
	vp.Width = max(m.state.Width-4, 20)
	return lipgloss.JoinVertical(lipgloss.Left, body, panelStyle.Render(vp.View()))
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	var bindings []key.Binding
	if v := m.overlay(); v != nil {
		bindings = v.ShortHelp()
	} else {
		bindings = m.activeTab().ShortHelp()
	}
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	if m.overlay() == nil && !viewCapturesInput(m.activeTab()) {
		hints = append(hints, formatter.Dim("1-5: views"))
		if m.detail() != "" {
			hints = append(hints, formatter.Dim("esc: close panel"))
		}
		if m.state.App.Toasts != nil && len(m.state.App.Toasts.Active()) > 0 {
			hints = append(hints, formatter.Dim("x: dismiss"))
		}
		hints = append(hints, formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// detailViewportKeyMap limits panel scrolling to the page keys so letters
// stay free for list shortcuts.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
}
