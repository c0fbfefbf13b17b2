package cli

import (
	"strings"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/listview"
	"github.com/spf13/pflag"
)

// statusFlag is a pflag.Value over one closed status enum. Its zero
// selection is All; anything outside the enum is rejected when the flag is
// parsed, before any service is called.
type statusFlag[S listview.Status] struct {
	sel      listview.Selector[S]
	parse    func(string) (S, error)
	statuses []S
}

var _ pflag.Value = (*statusFlag[domain.JobStatus])(nil)

func newStatusFlag[S listview.Status](parse func(string) (S, error), statuses []S) *statusFlag[S] {
	return &statusFlag[S]{sel: listview.All[S](), parse: parse, statuses: statuses}
}

func (f *statusFlag[S]) String() string { return f.sel.String() }
func (f *statusFlag[S]) Type() string   { return "status" }

func (f *statusFlag[S]) Set(raw string) error {
	sel, err := listview.ParseSelector(raw, f.parse)
	if err != nil {
		return err
	}
	f.sel = sel
	return nil
}

// usage lists the accepted values, All first.
func (f *statusFlag[S]) usage() string {
	names := []string{listview.AllLabel}
	for _, s := range f.statuses {
		names = append(names, s.String())
	}
	return "Filter by status: " + strings.Join(names, ", ")
}
