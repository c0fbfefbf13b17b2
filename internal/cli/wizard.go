package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/foreman/internal/cli/formatter"
	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// foremanHuhTheme styles dialogs with the dashboard palette: orange for the
// focused field, dim for everything else, red for validation errors.
func foremanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	bad := lipgloss.NewStyle().Foreground(formatter.ColorRed)

	f := &t.Focused
	f.Title = accent.Bold(true)
	f.Description = dim
	f.SelectSelector = accent
	f.MultiSelectSelector = accent
	f.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	f.UnselectedOption = fg
	f.UnselectedPrefix = dim.SetString("[ ] ")
	f.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = dim.Padding(0, 1)
	f.TextInput.Cursor = accent
	f.TextInput.Prompt = accent
	f.TextInput.Text = fg
	f.TextInput.Placeholder = dim
	f.ErrorIndicator = bad.SetString(" *")
	f.ErrorMessage = bad

	b := &t.Blurred
	b.Title = dim
	b.SelectSelector = dim
	b.SelectedOption = dim
	b.UnselectedOption = dim
	b.TextInput.Prompt = dim
	b.TextInput.Text = dim

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(foremanHuhTheme()).WithShowHelp(false)
}

// requiredInput is a text field that refuses blank values.
func requiredInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateRequired(title))
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// validateMoney accepts amounts like "$125,000" or "85000.50".
func validateMoney(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount is required")
	}
	m, err := domain.ParseMoney(s)
	if err != nil {
		return errors.New(`enter an amount like "$12,500"`)
	}
	if m < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// validatePayment accepts only amounts greater than zero.
func validatePayment(s string) error {
	if err := validateMoney(s); err != nil {
		return err
	}
	if m, _ := domain.ParseMoney(s); m <= 0 {
		return errors.New("payment must be greater than $0")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}

func validateRequiredDate(label string) func(string) error {
	required := validateRequired(label)
	return func(s string) error {
		if err := required(s); err != nil {
			return err
		}
		return validateOptionalDate(s)
	}
}

// enumOptions builds select options for a closed status enum.
func enumOptions[S interface {
	comparable
	String() string
}](values []S) []huh.Option[S] {
	opts := make([]huh.Option[S], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v.String(), v))
	}
	return opts
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(result),
		),
	)
}
