package users

// Status represents the lifecycle state of a user account.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

var transitions = map[Status][]Status{
	StatusActive:    {StatusInactive, StatusSuspended},
	StatusInactive:  {StatusActive, StatusSuspended},
	StatusSuspended: {StatusActive},
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
