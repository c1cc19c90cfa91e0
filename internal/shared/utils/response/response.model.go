package response

// Envelope is the uniform body every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"` // Human-readable message
	Data    interface{} `json:"data,omitempty"`    // Payload for success
	Error   string      `json:"error,omitempty"`   // Failure detail
}

// Paginated wraps a list payload with its paging metadata.
type Paginated struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}
