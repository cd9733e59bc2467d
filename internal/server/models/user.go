// Package models contains the persistent data types shared by repositories
// and services.
package models

import "time"

// User is a registered account, uniquely keyed by email. PasswordHash holds
// the bcrypt hash of the submitted password; the plaintext is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
