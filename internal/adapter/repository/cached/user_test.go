package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"auth-service/internal/adapter/cache"
	domain "auth-service/internal/domain/user"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, u *domain.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupCachedRepo(t *testing.T) (*CachedUserRepository, *MockStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := zaptest.NewLogger(t)
	userCache := cache.NewRedisUserCache(client, 5*time.Minute, logger)
	store := new(MockStore)
	return NewCachedUserRepository(store, userCache, logger), store
}

func TestCachedUserRepository_GetByID_CacheAside(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	u := &domain.User{ID: "u-1", Name: "Ana", Email: "a@x.com"}
	store.On("GetByID", ctx, "u-1").Return(u, nil).Once()

	// First lookup misses the cache and hits the store.
	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	// Second lookup is served from cache; the store is not called again.
	got, err = repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	store.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCachedUserRepository_GetByEmail_BypassesCache(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	u := &domain.User{ID: "u-1", Name: "Ana", Email: "a@x.com", PasswordHash: "hash"}
	store.On("GetByEmail", ctx, "a@x.com").Return(u, nil).Twice()

	// Login needs the stored hash, so every call goes to the store.
	for i := 0; i < 2; i++ {
		got, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "hash", got.PasswordHash)
	}

	store.AssertExpectations(t)
}

func TestCachedUserRepository_Create_Delegates(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	u := &domain.User{Name: "Ana", Email: "a@x.com", PasswordHash: "hash"}
	store.On("Create", ctx, u).Return("u-1", nil)

	id, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestCachedUserRepository_GetByID_StoreError(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	store.On("GetByID", ctx, "missing").Return(nil, assert.AnError)

	got, err := repo.GetByID(ctx, "missing")
	assert.Nil(t, got)
	assert.Error(t, err)
}
