package domain

import "time"

// User is an identity principal. PasswordHash is a bcrypt digest and is
// never serialized.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}
