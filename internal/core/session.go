package core

// SessionState tracks where an editing workflow currently is. Each
// controller runs at most one session at a time; forms are modal.
type SessionState int

const (
	// SessionIdle means no form or detail view is open.
	SessionIdle SessionState = iota
	// SessionFormOpen means a create or edit form is being filled in.
	SessionFormOpen
	// SessionDetailsOpen means an existing record is displayed read-only.
	SessionDetailsOpen
)

// FormMode distinguishes creating a new record from editing an existing one.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)
