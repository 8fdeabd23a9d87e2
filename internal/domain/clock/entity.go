package clock

import "time"

type EventKind string

const (
	KindIn  EventKind = "IN"
	KindOut EventKind = "OUT"
)

// ClockEvent is one immutable row of the punch audit trail. Events are only
// ever appended; updates and deletes do not exist anywhere in the codebase.
type ClockEvent struct {
	ID         string
	EmployeeID string
	Kind       EventKind
	Timestamp  time.Time
	CreatedAt  time.Time
}

// NextKind is the engine's sole transition rule. An employee with no
// history punches IN; otherwise the next event is the opposite of the last
// one, which keeps the per-employee sequence strictly alternating.
func NextKind(last EventKind, hasHistory bool) EventKind {
	if !hasHistory || last == KindOut {
		return KindIn
	}
	return KindOut
}
