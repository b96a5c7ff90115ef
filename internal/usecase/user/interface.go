package user

import "context"

// Usecase defines the interface for user profile operations.
type Usecase interface {
	GetProfile(ctx context.Context, in GetProfileRequest) (*GetProfileResponse, error)
}
