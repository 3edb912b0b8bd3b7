package encryption

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTemporaryToken returns a random hex string of the requested length,
// used as the single-use checkout redemption token.
func GenerateTemporaryToken(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	return token[:length], nil
}
