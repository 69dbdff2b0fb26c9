package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Count returns the number of registered users. Registration uses it to
	// decide whether the caller becomes the first admin.
	Count(ctx context.Context) (int64, error)
}
