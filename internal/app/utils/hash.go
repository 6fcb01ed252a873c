package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the hex SHA256 of data
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ShortHash returns the first 12 hex digits of the SHA256 of data, enough to
// correlate log lines for one upload
func ShortHash(data []byte) string {
	return HashBytes(data)[:12]
}
