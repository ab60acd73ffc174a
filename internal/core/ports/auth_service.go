package ports

import (
	"context"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

type AuthService interface {
	// Authenticate verifies the credentials and returns a signed bearer
	// token plus a non-sensitive user summary.
	Authenticate(ctx context.Context, email, password string) (string, *domain.User, error)
	// Signup creates a new account. Role defaults to "user" when empty.
	Signup(ctx context.Context, name, email, password, role string) (*domain.User, error)
}
