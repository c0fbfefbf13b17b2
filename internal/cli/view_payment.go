package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/contract"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// paymentView collects a payment amount for one invoice. Invalid amounts
// keep the dialog open with an inline error.
type paymentView struct {
	state       *SharedState
	invoiceID   string
	project     string
	outstanding domain.Money
	input       textinput.Model
	errMsg      string
}

func newPaymentView(state *SharedState, inv *domain.Invoice) *paymentView {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Placeholder = strings.TrimPrefix(inv.Outstanding().String(), "$")
	ti.CharLimit = 16
	ti.Focus()
	return &paymentView{
		state:       state,
		invoiceID:   inv.ID,
		project:     inv.Project,
		outstanding: inv.Outstanding(),
		input:       ti,
	}
}

func (v *paymentView) ID() ViewID    { return ViewPayment }
func (v *paymentView) Title() string { return "Record Payment" }

func (v *paymentView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "record")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *paymentView) Init() tea.Cmd { return textinput.Blink }

func (v *paymentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *paymentView) submit() tea.Cmd {
	amount := v.input.Value()
	if err := validatePayment(amount); err != nil {
		v.errMsg = err.Error()
		return nil
	}
	v.errMsg = ""
	app, id := v.state.App, v.invoiceID
	return closeThen(runMutation(func(ctx context.Context) (*contract.MutationResult, error) {
		return app.Invoices.RecordPayment(ctx, id, amount)
	}))
}

func (v *paymentView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("RECORD PAYMENT") + "\n")
	b.WriteString("  " + formatter.Dim("for ") + formatter.Bold(v.invoiceID) + formatter.Dim(" "+v.project) + "\n\n")
	b.WriteString("  " + formatter.KeyValue("Outstanding", v.outstanding.String()) + "\n\n")
	b.WriteString("  " + v.input.View() + "\n")
	if v.errMsg != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errMsg) + "\n")
	}
	return b.String()
}
