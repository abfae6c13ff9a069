package security

import (
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"
	"weathertracker.app/pkg/errors"
)

// BcryptHasher hashes passwords with bcrypt at a fixed cost
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
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.NewValidationError("password cannot be hashed: " + err.Error())
	}
	return string(hash), nil
}

// Compare returns InvalidCredentialsError when password does not match hash
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errors.NewInvalidCredentialsError()
	}
	return errors.Wrap(errors.InvalidCredentialsError, "stored password hash is unusable", err)
}
