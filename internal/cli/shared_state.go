package cli

// selection is the record shown in the detail panel. A zero ID means the
// panel is closed.
type selection struct {
	Kind ViewID
	ID   string
}

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	Selected selection
}

func (s *SharedState) Select(kind ViewID, id string) {
	s.Selected = selection{Kind: kind, ID: id}
}

func (s *SharedState) ClearSelection() {
	s.Selected = selection{}
}

// SelectedIn returns the selected id when it belongs to kind.
func (s *SharedState) SelectedIn(kind ViewID) (string, bool) {
	if s.Selected.ID == "" || s.Selected.Kind != kind {
		return "", false
	}
	return s.Selected.ID, true
}

// Wide reports whether lists render as a table rather than stacked cards.
func (s *SharedState) Wide() bool {
	return s.Width >= s.App.Config.NarrowWidth
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: tabs + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
