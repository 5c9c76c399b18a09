package models

import "time"

// Token is an access token issued by the server or verified by it. The
// client only ever fills SignedString and UserID.
type Token struct {
	SignedString string
	UserID       int64
	ExpiresAt    time.Time
}
