package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched page bodies between harvest runs
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a stable cache key from a page URL
func Key(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return "wordbergler:v1:" + hex.EncodeToString(hash[:])
}
