package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

func String(input string) string {
	return Bytes([]byte(input))
}

func Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}
