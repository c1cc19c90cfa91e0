package tickets

// Status represents the lifecycle state of an issued ticket.
type Status string

const (
	StatusActive    Status = "active"
	StatusUsed      Status = "used"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusActive:    {StatusUsed, StatusCancelled},
	StatusUsed:      {},
	StatusCancelled: {},
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
