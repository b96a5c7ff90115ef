package auth

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "auth-service/internal/domain/user"
	apperrors "auth-service/pkg/errors"
)

// Repository defines the data access operations the auth flows need.
// The persistence layer (PostgreSQL behind GORM, with the Redis decorator
// in front) implements it.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (string, error)         // Persist a new user, returning the assigned id
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Full record lookup for login verification; nil when absent
}

// PasswordHasher derives and verifies one-way salted password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hashed string) bool
}

// TokenSigner issues signed bearer tokens bound to a user identifier.
type TokenSigner interface {
	Sign(userID string) (string, error)
}

// Service implements the registration and login flows.
type Service struct {
	repo     Repository
	hasher   PasswordHasher
	tokens   TokenSigner
	log      *zap.Logger
	validate *validator.Validate
}

// New creates an auth service around the given collaborators.
func New(r Repository, h PasswordHasher, t TokenSigner, log *zap.Logger) *Service {
	return &Service{repo: r, hasher: h, tokens: t, log: log, validate: validator.New()}
}

// firstValidationError converts validator.ValidationErrors into the
// taxonomy's ValidationError. Only the first failing field is reported;
// fields are checked in struct declaration order, so the first failure
// determines the reason the caller sees.
func firstValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.NewValidationError("", "invalid request")
	}

	e := validationErrors[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return apperrors.NewValidationError(field, field+" is required")
	case "eqfield":
		return apperrors.NewValidationError(field, "passwords do not match")
	default:
		return apperrors.NewValidationError(field, field+" is invalid")
	}
}

// Register validates the request, enforces email uniqueness, hashes the
// password and persists the new user. Exactly one record is created on
// success and none on any failure path.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*RegisterResponse, error) {
	s.log.Info("registering user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("register validation failed", zap.Error(err))
		return nil, firstValidationError(err)
	}

	// Friendly fast path; the unique index on email is what actually
	// closes the check-then-insert race under concurrent registration.
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}
	if existing != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.NewConflictError("user", "email already registered")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			s.log.Warn("lost registration race for email", zap.String("email", in.Email))
			return nil, err
		}
		s.log.Error("failed to persist user", zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}

	s.log.Info("user registered", zap.String("id", id))
	return &RegisterResponse{ID: id}, nil
}

// Login validates the credentials against the stored hash and issues a
// signed bearer token carrying the user identifier.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("login validation failed", zap.Error(err))
		return nil, firstValidationError(err)
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to fetch user for login", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}
	if u == nil {
		s.log.Warn("login for unknown email", zap.String("email", in.Email))
		return nil, apperrors.NewNotFoundError("user", "user not found")
	}

	if !s.hasher.Check(in.Password, u.PasswordHash) {
		s.log.Warn("password mismatch", zap.String("id", u.ID))
		return nil, apperrors.NewAuthenticationError("invalid password")
	}

	token, err := s.tokens.Sign(u.ID)
	if err != nil {
		s.log.Error("failed to sign token", zap.String("id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}

	s.log.Info("user authenticated", zap.String("id", u.ID))
	return &LoginResponse{Token: token}, nil
}
