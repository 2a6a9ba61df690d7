package core

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	// DefaultResultTTL is how long a successful verification stays valid in cache
	DefaultResultTTL = 5 * time.Minute

	// DefaultClearanceTTL is how long a clearance pass stays valid
	DefaultClearanceTTL = 30 * time.Minute
)

// Result represents a settled verification outcome
type Result struct {
	OK         bool      // Whether the remote verifier accepted the token
	VerifiedAt time.Time // When the verification settled
	ExpiresAt  time.Time // When the cached result stops being trusted
}

// Expired reports whether the result is past its validity window
func (r Result) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// TokenDigest returns a hex digest of a captcha token. Raw tokens are
// secrets in transit; everything that persists or publishes a token
// reference (redis keys, events, clearance subjects) uses the digest.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
