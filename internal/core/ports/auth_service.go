package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// RegisterInput carries the fields of a self-registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
