package ports

import (
	"context"
	"time"
)

// ResultStore holds settled verification results. Pending verifications
// never touch the store; only outcomes with an expiry are written.
type ResultStore interface {
	// Get returns the cached outcome for a token. found is false for
	// unknown and for expired entries alike.
	Get(ctx context.Context, token string) (ok bool, found bool, err error)

	// Set records a settled outcome with an expiration time
	Set(ctx context.Context, token string, ok bool, ttl time.Duration) error
}
