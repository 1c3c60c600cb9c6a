package domain

import "time"

// User is the domain model for login-capable accounts. The IsAdmin flag is
// the single capability marker; it is re-read from the store on every
// request rather than trusted from a token.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy safe to attach to request context or serialize:
// the password hash is stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
