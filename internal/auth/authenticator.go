// Package auth provides account registration, credential checks, and JWT
// session tokens for the API layer.
package auth

import (
	"context"

	"github.com/settleflow/settleflow/internal/models"
)

// Authenticator abstracts the credential scheme so the HTTP layer does not
// care whether accounts use passwords, OAuth, or something else.
type Authenticator interface {
	// Register creates a new account from an email and a credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential against scheme requirements
	// (length for passwords, format for tokens, and so on).
	ValidateCredential(credential string) error
}
