package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"auth-service/internal/adapter/cache"
	domain "auth-service/internal/domain/user"
)

// Store is the persistent repository the decorator wraps. It is the union
// of what the auth and profile use cases need.
type Store interface {
	Create(ctx context.Context, u *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// CachedUserRepository decorates a persistent repository with a Redis
// cache for profile lookups. Writes and login lookups go straight to the
// store; only GetByID is served cache-aside, since cached entries carry no
// password hash.
type CachedUserRepository struct {
	store Store
	cache cache.UserCache
	log   *zap.Logger
	group singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(store Store, cache cache.UserCache, log *zap.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		store: store,
		cache: cache,
		log:   log,
	}
}

// Create delegates to the persistent store.
func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	return r.store.Create(ctx, u)
}

// GetByEmail delegates to the persistent store. Login needs the stored
// hash, which the cache deliberately does not hold.
func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.store.GetByEmail(ctx, email)
}

// GetByID retrieves a user by ID using the cache-aside pattern, with
// single-flight collapsing concurrent misses for the same id.
func (r *CachedUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.String("id", id), zap.Error(err))
		} else if cachedUser != nil {
			r.log.Debug("user retrieved from cache", zap.String("id", id))
			return cachedUser, nil
		}
	}

	key := fmt.Sprintf("user:%s", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Another request may have populated the cache while we waited.
		if r.cache != nil {
			cachedUser, err := r.cache.Get(ctx, id)
			if err == nil && cachedUser != nil {
				return cachedUser, nil
			}
		}

		u, err := r.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, u); err != nil {
				r.log.Warn("failed to cache user", zap.String("id", id), zap.Error(err))
			}
		}

		return u, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}
