package user

// User represents a persisted user record.
// PasswordHash is the one-way salted hash of the password; the plaintext
// is never stored and the hash never leaves the credential path.
type User struct {
	ID           string // ID is the opaque, store-assigned identifier
	Name         string // Name is the full name of the user
	Email        string // Email is the unique email address, used as login key
	PasswordHash string // PasswordHash is the bcrypt hash of the password
}
