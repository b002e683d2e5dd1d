package service

import (
	"crypto/rand"
	"math/big"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/avocadohq/admin-console/internal/errors"
)

// tempPasswordLength matches the minimum enforced by the provisioning
// validation rules.
const tempPasswordLength = 16

// tempPasswordAlphabet mixes the character classes the strength rules
// require. Ambiguous characters (0/O, 1/l) are excluded.
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// GeneratePassword creates a random temporary password and its Argon2id hash.
func (p *passwordService) GeneratePassword() (string, string, error) {
	buf := make([]byte, tempPasswordLength)
	alphabetSize := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", "", apperrors.Wrap(err, "failed to generate temporary password")
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}

	plainPassword := string(buf)
	hashedPassword, err := p.HashPassword(plainPassword)
	if err != nil {
		return "", "", err
	}

	return plainPassword, hashedPassword, nil
}

// HashPassword hashes a plain text password using Argon2id.
func (p *passwordService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// ComparePassword performs a constant-time comparison between a plain
// password and its hash.
func (p *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using the interactive Argon2id
// policy, suitable for login-time verification latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		// Only reachable with an invalid policy
		panic(err)
	}

	return &passwordService{hasher: hasher}
}
