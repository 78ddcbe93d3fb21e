package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
)

// Repository keeps users in a map keyed by email. Create is an atomic
// insert-if-absent, which gives it the same uniqueness guarantee as the
// database-backed stores.
type Repository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewRepository() *Repository {
	return &Repository{users: make(map[string]domain.User)}
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *Repository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[email]
	return ok, nil
}

func (r *Repository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneUser(user)
	if _, ok := r.users[stored.Email]; ok {
		return autherror.ErrEmailAlreadyInUse
	}
	r.users[stored.Email] = stored
	return nil
}

// cloneUser detaches the stored record from the caller's string memory.
// Request decoders may hand out strings backed by reused buffers.
func cloneUser(user *domain.User) domain.User {
	return domain.User{
		ID:           strings.Clone(user.ID),
		FirstName:    strings.Clone(user.FirstName),
		LastName:     strings.Clone(user.LastName),
		Email:        strings.Clone(user.Email),
		PasswordHash: strings.Clone(user.PasswordHash),
		CreatedAt:    user.CreatedAt,
	}
}

func (r *Repository) Ping(context.Context) error {
	return nil
}

// Len reports how many users are stored.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
