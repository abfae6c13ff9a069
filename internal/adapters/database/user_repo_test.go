package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

func TestUserRepository_SaveAndFind(t *testing.T) {
	repo := NewUserRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	user := &ports.UserData{Login: "alice", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Save(ctx, user))
	assert.NotZero(t, user.ID)

	byLogin, err := repo.FindByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byLogin.ID)
	assert.Equal(t, "$2a$10$hash", byLogin.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Login)
}

func TestUserRepository_Save_DuplicateLogin(t *testing.T) {
	repo := NewUserRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &ports.UserData{Login: "alice", PasswordHash: "h"}))

	err := repo.Save(ctx, &ports.UserData{Login: "alice", PasswordHash: "h2"})

	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByLogin(ctx, "ghost")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByID(ctx, 404)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByID(ctx, 0)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByLogin(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}
