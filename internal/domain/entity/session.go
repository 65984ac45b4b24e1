package entity

import "time"

// PendingCode is the one-time verification code awaiting confirmation.
// A new code request overwrites it; a successful verify clears it.
type PendingCode struct {
	Code   string    `json:"code"`
	Expiry time.Time `json:"expiry"`
	Email  string    `json:"email"`
}

// Session is the durable signed-in state of the single browser/user.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
