package memory_test

import (
	"context"
	"testing"
	"unsafe"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/repository/memory"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := memory.NewRepository()

	user, err := r.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	exists, err := r.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, r.Create(ctx, &domain.User{ID: "1", Email: "ada@example.com", PasswordHash: "h"}))

	user, err = r.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "1", user.ID)

	exists, err = r.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = r.Create(ctx, &domain.User{ID: "2", Email: "ada@example.com"})
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Equal(t, 1, r.Len())
	assert.NoError(t, r.Ping(ctx))
}

func TestRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := memory.NewRepository()
	require.NoError(t, r.Create(ctx, &domain.User{ID: "1", Email: "ada@example.com"}))

	user, err := r.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	user.Email = "mutated@example.com"

	again, err := r.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", again.Email)
}

func TestRepository_CreateCopiesCallerStrings(t *testing.T) {
	ctx := context.Background()
	r := memory.NewRepository()

	buf := []byte("ada@example.com")
	email := unsafe.String(&buf[0], len(buf))
	require.NoError(t, r.Create(ctx, &domain.User{ID: "1", FirstName: "Ada", Email: email}))

	copy(buf, "qqq@example.org")

	user, err := r.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)

	missing, err := r.GetByEmail(ctx, "qqq@example.org")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
