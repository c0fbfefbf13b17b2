package cli

import (
	"context"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsLoadedMsg struct {
	settings *domain.Settings
	err      error
}

func (settingsLoadedMsg) target() ViewID { return ViewSettings }

// settingsView shows the account settings and opens one form per section.
type settingsView struct {
	state    *SharedState
	settings *domain.Settings
	err      error
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return tabLabels[ViewSettings] }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "company")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "password")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "2fa")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invite")),
	}
}

func (v *settingsView) Init() tea.Cmd { return v.reload() }

func (v *settingsView) reload() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		s, err := app.Settings.Get(context.Background())
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		v.err = msg.err
		if msg.err == nil {
			v.settings = msg.settings
		}
		return v, nil

	case refreshViewMsg:
		return v, v.reload()

	case tea.KeyMsg:
		if v.settings == nil {
			return v, nil
		}
		return v, v.open(msg.String())
	}
	return v, nil
}

// open returns the command for a section shortcut, or nil.
func (v *settingsView) open(k string) tea.Cmd {
	state, app := v.state, v.state.App
	switch k {
	case "p":
		f := &profileFields{Profile: v.settings.Profile}
		return pushView(formView(state, "Profile", f.form(), func() mutation { return f.submit(app) }))
	case "c":
		f := &companyFields{Company: v.settings.Company}
		return pushView(formView(state, "Company", f.form(), func() mutation { return f.submit(app) }))
	case "n":
		f := newNotificationFields(v.settings.Notifications)
		return pushView(formView(state, "Notifications", f.form(), func() mutation { return f.submit(app) }))
	case "w":
		f := &passwordFields{}
		return pushView(formView(state, "Change Password", f.form(), func() mutation { return f.submit(app) }))
	case "t":
		return runMutation(func(ctx context.Context) (*contract.MutationResult, error) {
			return app.Settings.EnableTwoFactor(ctx)
		})
	case "i":
		f := &inviteFields{}
		return pushView(formView(state, "Invite Member", f.form(), func() mutation { return f.submit(app) }))
	}
	return nil
}

func (v *settingsView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	if v.settings == nil {
		return formatter.Dim("Loading settings...")
	}
	return settingsDetail(v.settings)
}
