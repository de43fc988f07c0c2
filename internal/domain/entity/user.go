// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can list properties as an owner and book them as a renter.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the user's password. Never rendered.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
