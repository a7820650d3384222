package secrets

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password cannot be empty")
	ErrTooLong  = errors.New("password is too long")
	ErrMismatch = errors.New("password does not match")
)

// Hash creates a bcrypt hash of the password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext password against a bcrypt hash.
func Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("could not verify password: %w", err)
	}
	return nil
}
