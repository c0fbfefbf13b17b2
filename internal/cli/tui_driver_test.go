package cli

import (
	"testing"

	"github.com/alexanderramin/foreman/internal/teatest"
)

// TestDriver wraps teatest.Driver with dashboard-specific inspection
// methods for appModel internals the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the dashboard over app at 120x40 and drains Init,
// which loads every tab synchronously from the in-memory store.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveTab returns the selected top-level view.
func (d *TestDriver) ActiveTab() ViewID {
	return d.appModel().active
}

// OverlayID returns the top dialog's ViewID, or -1 when no dialog is open.
func (d *TestDriver) OverlayID() ViewID {
	m := d.appModel()
	if v := m.overlay(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

// Selected returns the record selected for the detail panel.
func (d *TestDriver) Selected() selection {
	return d.appModel().state.Selected
}

// Note returns the status-area note.
func (d *TestDriver) Note() string {
	return d.appModel().note
}
