package usecase

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Iterations = 4096

// PasswordHasher produces the deterministic one-way digest stored in the
// users collection. Login compares digests by equality, so the digest of a
// given password must never change once users exist.
type PasswordHasher struct {
	salt []byte
}

func NewPasswordHasher(salt string) *PasswordHasher {
	return &PasswordHasher{salt: []byte(salt)}
}

func (h *PasswordHasher) Hash(password string) string {
	digest := pbkdf2.Key([]byte(password), h.salt, pbkdf2Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(digest)
}
