package withdrawals

// Status represents the lifecycle state of a withdrawal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusCompleted},
	StatusApproved:  {StatusCompleted},
	StatusRejected:  {},
	StatusCompleted: {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving to target is legal. Setting the
// same status again is treated as a no-op and allowed.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible. Reaching
// a terminal status stamps processed_by and processed_at.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
