package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns 2*size hex characters of crypto-random data.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
