package service

// PasswordHasher hashes login passwords and checks candidates against
// stored hashes.
type PasswordHasher interface {
	// Hash derives a one-way hash from the plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	Compare(hash, password string) error
}
