// Package utils holds small helpers shared by the server and the client:
// typed context keys, bcrypt password hashing, JSON response writing, the
// resty HTTP client wrapper, JWT issuing and parsing, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not an int64.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
