package models

// SessionResponse wraps the current user for session endpoints.
// When no session exists the User pointer is nil and the body
// serializes as "{}".
type SessionResponse struct {
	User *SafeUser `json:"user,omitempty"`
}

// MessageResponse is a minimal acknowledgement body, e.g. the
// "success" message returned by logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope produced by the HTTP
// layer for every failure. Stack is populated only outside production.
type ErrorResponse struct {
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Stack   string   `json:"stack,omitempty"`
}
