// Package id produces the public identifiers stored on accounts and applications.
package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Size is the length of every public id.
const Size = 32

// NewID32 returns a random (v4) UUID rendered as 32 lowercase hex characters.
func NewID32() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// Valid reports whether s looks like a NewID32 value.
func Valid(s string) bool {
	if len(s) != Size {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
