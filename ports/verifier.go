package ports

import "context"

// Verifier wraps the single outbound call to the remote challenge service.
type Verifier interface {
	// Verify reports whether the remote service accepts the token. An
	// error means the call itself failed (transport, decode); callers
	// must not treat it as an authoritative rejection.
	Verify(ctx context.Context, token string) (bool, error)
}
