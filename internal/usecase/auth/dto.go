package auth

// RegisterRequest represents the payload for registering a new user.
// Field order matters: validation reports the first failing field, so the
// declaration order fixes the check order (name, email, password, match).
type RegisterRequest struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// RegisterResponse represents the response payload after registration.
type RegisterResponse struct {
	ID string
}

// LoginRequest represents the payload for logging a user in.
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// LoginResponse carries the signed bearer token issued at login.
type LoginResponse struct {
	Token string
}
