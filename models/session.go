package models

import "time"

// Session is the explicit login context. It is created once at login and
// rebuilt from the bearer token on every request; nothing keeps a global
// logged-in flag.
type Session struct {
	PlayerName string    `json:"playerName"`
	IssuedAt   time.Time `json:"-"`
	ExpiresAt  time.Time `json:"-"`
}
