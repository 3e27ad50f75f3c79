// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The email doubles as the login
// identifier and is unique across the system.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Email        string    // Login identifier, unique, stored case-sensitive.
	PasswordHash string    // bcrypt digest of the password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
