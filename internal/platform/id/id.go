package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers, used to key quiz records in the
// history log.
type Generator interface {
	New() string
}

// RandomHex issues 32-character hex identifiers.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
