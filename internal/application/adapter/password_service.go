package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns domainerror.ErrInvalidCredentials on mismatch.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength enforces the length and character-class rules
	// applied on registration and reset.
	ValidatePasswordStrength(password string) error
}
