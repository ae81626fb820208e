package converter

// orderTracker is the two-state machine behind order grouping: either no
// group is open yet, or a group is open for a specific document number.
// A single transition rule governs it: a non-empty document number that is
// not the "0" placeholder and differs from the open group's number opens a
// new group. Rows failing the rule stay in the current group, so the source
// ERP's "0" and empty placeholder rows never open groups of their own.
type orderTracker struct {
	current string
	open    bool
}

// begin reports whether doc opens a new order group, updating the tracker
// state when it does.
func (t *orderTracker) begin(doc string) bool {
	if doc == "" || doc == "0" {
		return false
	}
	if t.open && doc == t.current {
		return false
	}
	t.current = doc
	t.open = true
	return true
}
