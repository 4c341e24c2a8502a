package model

import (
	"crypto/rand"
	"encoding/hex"
)

// IDLength is the length of entity identifiers: 24 hexadecimal characters.
const IDLength = 24

// NewID generates a random 24-character hex identifier.
func NewID() string {
	buf := make([]byte, IDLength/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
