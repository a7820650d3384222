package application

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal: approved and rejected have no outgoing transitions.
func (s Status) IsTerminal() bool { return s == StatusApproved || s == StatusRejected }

// CanTransitionTo allows only pending -> approved and pending -> rejected.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}
