package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// FakeVerifier is a test-only implementation of the ports.Verifier
// interface. It counts outbound calls so tests can assert single-flight
// behaviour.
type FakeVerifier struct {
	// Result controls the verification outcome
	Result bool
	// Err, when set, is returned instead of a result
	Err error
	// Delay holds each call open, letting concurrent callers pile up
	Delay time.Duration
	// ExpectedToken, when set, asserts the token passed through
	ExpectedToken string

	calls atomic.Int32
}

// Verify implements the ports.Verifier interface for tests
func (f *FakeVerifier) Verify(ctx context.Context, token string) (bool, error) {
	f.calls.Add(1)

	if f.Delay > 0 {
		time.Sleep(f.Delay)
	}
	if f.ExpectedToken != "" && f.ExpectedToken != token {
		return false, fmt.Errorf("received unexpected token. Got '%s', want '%s'", token, f.ExpectedToken)
	}
	if f.Err != nil {
		return false, f.Err
	}
	return f.Result, nil
}

// Calls reports how many outbound calls were made
func (f *FakeVerifier) Calls() int {
	return int(f.calls.Load())
}
