package testutil

import (
	"context"
	"sync"

	"github.com/layer-3/gatecheck/ports"
)

// FakePublisher collects verification events for assertions
type FakePublisher struct {
	mu     sync.Mutex
	events []ports.VerificationEvent
}

// PublishVerification implements the ports.EventPublisher interface
func (f *FakePublisher) PublishVerification(ctx context.Context, event ports.VerificationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return nil
}

// Events returns a copy of the collected events
func (f *FakePublisher) Events() []ports.VerificationEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]ports.VerificationEvent, len(f.events))
	copy(out, f.events)
	return out
}
