// Package service provides platform governance services: temporary credential
// generation and Argon2id hashing for provisioned administrators.
package service

// PasswordService generates and hashes temporary administrator passwords.
type PasswordService interface {
	// GeneratePassword creates a random temporary password and its Argon2id
	// hash. The plain value is shown to the operator once; only the hash is
	// stored.
	GeneratePassword() (plainPassword string, hashedPassword string, err error)

	// HashPassword hashes an operator-supplied temporary password.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword performs a constant-time comparison between a plain
	// password and its hash.
	ComparePassword(plainPassword string, hashedPassword string) bool
}
