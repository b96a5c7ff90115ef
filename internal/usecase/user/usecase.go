package user

import (
	"context"

	"go.uber.org/zap"

	domain "auth-service/internal/domain/user"
	apperrors "auth-service/pkg/errors"
)

// Repository defines the data access the profile lookup needs.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error) // Retrieve user by ID
}

// Service implements the token-gated profile lookup.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates a profile service around the given repository.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// GetProfile returns the user's public fields. The identifier comes from
// the request path, not from the verified token: the token only proves a
// valid session exists.
func (s *Service) GetProfile(ctx context.Context, in GetProfileRequest) (*GetProfileResponse, error) {
	if in.ID == "" {
		return nil, apperrors.NewNotFoundError("user", "user not found")
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Warn("profile not found", zap.String("id", in.ID))
			return nil, err
		}
		s.log.Error("failed to get user", zap.String("id", in.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("something went wrong on the server, please try again later", err)
	}

	return &GetProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
