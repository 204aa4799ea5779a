package models

// MessageResponse is the body of successful mutations that do not return
// the entity itself.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// Error carries a generic, client-safe description; internal details are
// only logged.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
