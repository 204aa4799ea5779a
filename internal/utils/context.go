// Package utils holds helpers shared by the server and turfctl: the request
// context identity, strict JSON decoding and response writing, JWT handling,
// clocks and id generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "turf-booking context key " + string(c)
}

// userIDKey carries the authenticated user id set by the auth middleware.
const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user identifier.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the identifier stored by WithUserID.
// ok is false when the request never passed the auth middleware.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}
