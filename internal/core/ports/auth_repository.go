package ports

import (
	"context"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

// UserRepository is the credential store: identities, password hashes and
// role memberships.
type UserRepository interface {
	// Create persists user with its roles. It returns domain.ErrUserNameTaken
	// or domain.ErrEmailTaken on a uniqueness violation.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AddRole grants role to the user. Granting a held role is a no-op.
	AddRole(ctx context.Context, userID, role string) error
}
