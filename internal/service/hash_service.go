package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const clientHashLen = 16

// ClientHasher pseudonymises client addresses with keyed BLAKE2b so audit
// rows can be correlated without storing the raw IP.
type ClientHasher struct {
	key []byte
}

// NewClientHasher creates a hasher keyed with key. An empty key is replaced by
// a random one, which keeps hashes stable only for the life of the process.
func NewClientHasher(key string) (*ClientHasher, error) {
	k := []byte(key)
	if len(k) == 0 {
		k = make([]byte, 32)
		if _, err := rand.Read(k); err != nil {
			return nil, fmt.Errorf("generating hash key: %w", err)
		}
	}
	if len(k) > blake2b.Size {
		return nil, fmt.Errorf("hash key must be at most %d bytes, got %d", blake2b.Size, len(k))
	}
	return &ClientHasher{key: k}, nil
}

// Hash returns a hex digest of value. Empty input hashes to the empty string.
func (h *ClientHasher) Hash(value string) string {
	if value == "" {
		return ""
	}
	// only fails for oversized keys, rejected in NewClientHasher
	mac, _ := blake2b.New(clientHashLen, h.key)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
