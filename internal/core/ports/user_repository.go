package ports

import (
	"context"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Emails are stored normalized (lower case); FindByEmail expects the
// caller to pass a normalized value.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// UserUpdate carries the mutable user fields. Nil pointers mean "leave
// unchanged"; the password hash can only be replaced, never read back.
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *string
	PasswordHash *string
}
