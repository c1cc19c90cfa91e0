package events

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsValid checks if the event status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusActive, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// transitions is the closed set of legal status moves.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusPending, StatusActive, StatusCancelled},
	StatusPending:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransitionTo checks the transition table for a legal move.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AdminAssignable reports whether an admin status update may set this value.
// Draft is reserved for vendors composing an event.
func (s Status) AdminAssignable() bool {
	switch s {
	case StatusPending, StatusActive, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
