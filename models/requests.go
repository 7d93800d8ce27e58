package models

// LoginRequest is the body of POST /api/session. Credential accepts
// either a username or an email; the server decides which one matched.
type LoginRequest struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// SignupRequest is the body of POST /api/users. Validation tags are
// evaluated by the auth service, which reports every violated rule at
// once rather than stopping at the first.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=4,max=30,not_email"`
	Email    string `json:"email" validate:"required,min=3,max=256,email"`
	Password string `json:"password" validate:"required,min=6"`
}
