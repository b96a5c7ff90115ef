package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	domain "auth-service/internal/domain/user"
	apperrors "auth-service/pkg/errors"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserSchema{}))
	return db
}

func newTestRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepoPG_Create(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{
		Name:         "Ana",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$hash",
	})

	require.NoError(t, err)
	// The repository assigns the identifier.
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "$2a$12$hash", got.PasswordHash)
}

func TestUserRepoPG_Create_NilUser(t *testing.T) {
	repo := newTestRepo(t)

	id, err := repo.Create(context.Background(), nil)
	assert.Empty(t, id)
	assert.Error(t, err)
}

func TestUserRepoPG_Create_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Ana", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	id, err := repo.Create(ctx, &domain.User{Name: "Other", Email: "a@x.com", PasswordHash: "h2"})
	assert.Empty(t, id)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_GetByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{Name: "Ana", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "h", got.PasswordHash)
}

func TestUserRepoPG_GetByEmail_AbsentIsNilNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoPG_GetByEmail_CaseSensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Ana", Email: "Ana@X.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
