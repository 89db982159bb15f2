package grid

// Defaults restored by State.Reset.
const (
	DefaultPage         = 1
	DefaultItemsPerPage = 5
)

// FilterAll is the filter value that places no constraint on its key.
const FilterAll = "all"

// PageSizes lists the page sizes offered to users. The engine accepts any
// positive size; the list is a presentation affordance.
var PageSizes = []int{5, 10, 20, 50}

// State is the view-state of one table instance: search text, active
// filters, current page, page size and the selection set.
//
// The selection survives search, filter and page changes. It is only emptied
// by ClearSelection, a completed bulk action, or Reset.
type State struct {
	Search       string
	Filters      map[string]string
	Page         int
	ItemsPerPage int

	selected selection
}

// NewState returns a State holding the defaults.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores every field to its default. Calling it repeatedly yields the
// same state as calling it once.
func (s *State) Reset() {
	s.Search = ""
	s.Filters = map[string]string{}
	s.Page = DefaultPage
	s.ItemsPerPage = DefaultItemsPerPage
	s.selected = selection{}
}

// IsSelected reports whether id is in the selection set.
func (s *State) IsSelected(id string) bool {
	return s.selected.has(id)
}

// Selected returns the selected ids in the order they were first selected.
func (s *State) Selected() []string {
	return s.selected.ids()
}

// SelectedCount returns the size of the selection set.
func (s *State) SelectedCount() int {
	return s.selected.len()
}

// FilterValue returns the active value for key, or FilterAll when the key
// carries no constraint.
func (s *State) FilterValue(key string) string {
	if v, ok := s.Filters[key]; ok && v != "" {
		return v
	}
	return FilterAll
}

// selection is an insertion-ordered set of record ids.
type selection struct {
	order []string
	index map[string]struct{}
}

func (s *selection) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *selection) add(id string) {
	if s.has(id) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *selection) remove(id string) {
	if !s.has(id) {
		return
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *selection) len() int {
	return len(s.order)
}

func (s *selection) ids() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
