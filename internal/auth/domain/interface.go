package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain UserRepository

// UserRepository is the credential store. Emails passed in are already normalized.
type UserRepository interface {
	// GetByEmail returns nil, nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create must return autherror.ErrEmailAlreadyInUse when the email is taken,
	// including when a concurrent insert won the race.
	Create(ctx context.Context, user *User) error
	Ping(ctx context.Context) error
}
