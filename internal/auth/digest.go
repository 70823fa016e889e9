package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Digest returns the lowercase hex SHA-256 of password
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Gate compares submitted passwords with the provisioned digest.
//
// The digest ships with the public site configuration, so the gate only
// decides what the admin panel shows. It is not an access-control boundary.
type Gate struct {
	digest string
}

// NewGate creates a gate for a hex digest. An empty digest never matches.
func NewGate(digest string) *Gate {
	return &Gate{digest: strings.ToLower(strings.TrimSpace(digest))}
}

// Configured reports whether a digest was provisioned
func (g *Gate) Configured() bool {
	return g.digest != ""
}

// Check reports whether password hashes to the provisioned digest
func (g *Gate) Check(password string) bool {
	if !g.Configured() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Digest(password)), []byte(g.digest)) == 1
}
