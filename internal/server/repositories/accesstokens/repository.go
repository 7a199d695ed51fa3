// Package accesstokens declares the read-only view of provisioned access
// tokens. Tokens are created and revoked outside this service.
package accesstokens

import (
	"context"

	"github.com/google/uuid"
)

// Repository answers whether a token has been provisioned.
type Repository interface {
	// Exists reports whether a token with the given id is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
