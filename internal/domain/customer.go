package domain

import "time"

// Customer represents a registered account. The profile carries everything
// user-facing; this is only the credential record.
type Customer struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
