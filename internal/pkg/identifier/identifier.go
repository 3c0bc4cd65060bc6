package identifier

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// GenerateSessionID - generates a new unique id for a play session.
func GenerateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateRoundID - generates a unique identifier for one round of a match.
func GenerateRoundID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return ""
	}
	return n.String()
}
