package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every new hash.
// Matches bcrypt.DefaultCost (10 rounds).
const passwordHashCost = bcrypt.DefaultCost

// HashPassword computes a randomly-salted bcrypt hash of the given password.
// The salt is generated per call, so hashing the same input twice yields
// different outputs.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword reports whether password matches the given bcrypt hash.
// A malformed hash value yields false, never an error or panic, so callers
// can treat any mismatch uniformly as bad credentials.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
