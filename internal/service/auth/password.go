package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines one-way hashing and verification of passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext password.
	// The salt is random per call and embedded in the output.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on match, or an error on mismatch or a
	// malformed hash; it never panics into caller logic.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost.
// A cost below bcrypt's minimum falls back to the default cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements PasswordHasher using bcrypt with the configured cost.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements PasswordHasher using bcrypt's constant-time comparison.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
