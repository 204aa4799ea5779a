package models

import "time"

// User represents an account entity used for authentication and booking
// ownership. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	// It is the identity embedded into session tokens and stamped on bookings.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the user.
	// It is normalised (trimmed, lower-cased) before storage and lookup.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of the register and login endpoints.
// Password is plaintext here and must only ever be handed to the hasher.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}
