package ports

import (
	"context"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

// UpdateUserInput carries the mutable account fields for the admin update
// endpoint. Empty strings mean "leave unchanged"; Password is re-hashed
// before it touches the repository.
type UpdateUserInput struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Password string
}

// UserService defines the admin-gated account management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
}
