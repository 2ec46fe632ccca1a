package entity

import (
	"time"
)

// User is the aggregate root for the credential domain.
// PasswordHash carries a bcrypt digest and must never leave the
// store/hasher boundary in responses or logs.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
