package dto

import "time"

// Session is a started login session. Token goes into the session cookie.
type Session struct {
	Token     string
	Email     string
	ExpiresIn int64
	ExpiresAt time.Time
}
