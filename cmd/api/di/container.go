package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"auth-service/cmd/api/infrastructure"
	"auth-service/internal/adapter/cache"
	ginhandler "auth-service/internal/adapter/gin/handler"
	"auth-service/internal/adapter/gin/middleware"
	"auth-service/internal/adapter/repository/cached"
	"auth-service/internal/adapter/repository/postgres"
	"auth-service/internal/config"
	authuc "auth-service/internal/usecase/auth"
	useruc "auth-service/internal/usecase/user"
	"auth-service/pkg/hash"
	redisclient "auth-service/pkg/redis"
	"auth-service/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	TokenSvc    *token.JWTService
	AuthUC      authuc.Usecase
	UserUC      useruc.Usecase
	RateLimiter *middleware.RateLimiter
	AuthHandler *ginhandler.AuthHandler
	UserHandler *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Cache-aside profile cache in front of the persistent repository
	userCache := cache.NewRedisUserCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)
	dbRepo := postgres.NewUserRepoPG(db, l)
	repo := cached.NewCachedUserRepository(dbRepo, userCache, l)

	// Authentication collaborators, built once from explicit config
	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenSvc, err := token.NewJWTService(cfg.Auth.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Use cases
	authUC := authuc.New(repo, hasher, tokenSvc, l)
	userUC := useruc.New(repo, l)

	// Rate limiter for the credential endpoints
	rateLimiter := middleware.NewRateLimiter(
		rdb.Client,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		TokenSvc:    tokenSvc,
		AuthUC:      authUC,
		UserUC:      userUC,
		RateLimiter: rateLimiter,
		AuthHandler: ginhandler.NewAuthHandler(authUC, l),
		UserHandler: ginhandler.NewUserHandler(userUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
