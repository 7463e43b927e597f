package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// VerifyResult reports the outcome of a password check. RehashNeeded still
// counts as an authenticated user; the stored hash was produced with weaker
// parameters and should be regenerated on the next write.
type VerifyResult int

const (
	VerifyFailed VerifyResult = iota
	VerifySuccess
	VerifySuccessRehashNeeded
)

// PasswordHasher provides hashing logic to securely store passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) (VerifyResult, error)
}

// BcryptHasher hashes passwords with bcrypt at the configured cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(hashedPassword, password string) (VerifyResult, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return VerifyFailed, nil
		}
		return VerifyFailed, fmt.Errorf("bcrypt compare failed: %w", err)
	}

	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return VerifyFailed, fmt.Errorf("bcrypt cost failed: %w", err)
	}
	if cost < h.cost {
		return VerifySuccessRehashNeeded, nil
	}
	return VerifySuccess, nil
}
