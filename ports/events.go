package ports

import "context"

// VerificationEvent describes one settled or cache-served check
type VerificationEvent struct {
	TokenDigest string `json:"token_digest"`
	OK          bool   `json:"ok"`
	Cached      bool   `json:"cached"`
}

// EventPublisher publishes verification events to notify other instances
type EventPublisher interface {
	PublishVerification(ctx context.Context, event VerificationEvent) error
}
