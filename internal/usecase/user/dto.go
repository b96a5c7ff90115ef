package user

// GetProfileRequest represents the request for a profile lookup.
type GetProfileRequest struct {
	ID string
}

// GetProfileResponse is the public view of a user. The password hash is
// deliberately absent; it never leaves the credential path.
type GetProfileResponse struct {
	ID    string
	Name  string
	Email string
}
