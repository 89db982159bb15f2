package grid

import "errors"

// Bulk action errors.
var (
	ErrNoAction       = errors.New("table has no bulk action")
	ErrEmptySelection = errors.New("no records selected")
)

// Action is the bulk-action capability of a table. Tables without one use
// NoAction; tables with one use BulkAction.
type Action interface {
	// Available reports whether the table offers a bulk action.
	Available() bool
	// Label is the text shown on the action control.
	Label() string
	// Run applies the action to the given ids.
	Run(ids []string) error
}

// NoAction returns the capability of a table that offers no bulk action.
func NoAction() Action {
	return noAction{}
}

// BulkAction returns an action capability invoking fn with the selected ids.
func BulkAction(label string, fn func(ids []string) error) Action {
	return bulkAction{label: label, fn: fn}
}

type noAction struct{}

func (noAction) Available() bool    { return false }
func (noAction) Label() string      { return "" }
func (noAction) Run([]string) error { return ErrNoAction }

type bulkAction struct {
	label string
	fn    func(ids []string) error
}

func (a bulkAction) Available() bool { return a.fn != nil }
func (a bulkAction) Label() string   { return a.label }

func (a bulkAction) Run(ids []string) error {
	if a.fn == nil {
		return ErrNoAction
	}
	return a.fn(ids)
}
