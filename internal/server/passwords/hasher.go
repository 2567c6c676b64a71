// Package passwords hashes and verifies account passwords. Every hash embeds
// its own random salt and parameters, so two users with the same password get
// different hashes and verification needs nothing but the stored string.
package passwords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPasswordTooLong is returned when the password exceeds what the
// algorithm can represent without truncation.
var ErrPasswordTooLong = errors.New("password is too long")

// ErrMalformedHash is returned by Compare for strings that were not produced
// by the hasher.
var ErrMalformedHash = errors.New("malformed password hash")

// Hasher produces and checks salted password hashes.
type Hasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash. A mismatch is (false, nil).
	Compare(hash, password string) (bool, error)
}

// New returns the hasher named by algo: "bcrypt" (default) or "argon2id".
func New(algo string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(algo) {
	case "", "bcrypt":
		return NewBcrypt(bcryptCost), nil
	case "argon2id", "argon2":
		return NewArgon2id(DefaultArgon2Params), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", algo)
	}
}
