// Package security provides one-way password hashing.
package security

import (
	"github.com/matthewhartstonge/argon2"
)

var hashConfig = argon2.DefaultConfig()

// HashPassword hashes a plaintext password with a freshly generated salt and
// returns the encoded digest. The encoding embeds the salt and the work
// parameters, so the configuration can be retuned later without breaking
// verification of existing digests.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the encoded
// digest. A wrong password yields (false, nil); the error is reserved for
// digests that cannot be decoded.
func VerifyPassword(password, encodedDigest string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedDigest))
}
