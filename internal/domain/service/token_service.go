package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: validity is reconstructed from the signature and the
// embedded expiry, nothing is persisted server-side.
type TokenService interface {
	// Issue creates a signed token bound to the given user ID, valid for the
	// configured TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the embedded user ID.
	// Malformed, tampered and expired tokens all fail with the same error so
	// callers cannot distinguish the cause.
	Verify(tokenString string) (uuid.UUID, error)
}
