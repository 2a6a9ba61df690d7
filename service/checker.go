package service

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
	"golang.org/x/sync/singleflight"
)

// Checker coordinates captcha verification: it serves settled results from
// the store within their TTL and collapses concurrent verifications of the
// same token into a single outbound call.
//
// Captcha tokens are single-use on the remote side. When a UI double-submits
// the same token, the second outbound call would be rejected even though the
// token is legitimate; sharing one in-flight call keeps the boundary
// idempotent for callers.
type Checker struct {
	verifier ports.Verifier
	store    ports.ResultStore
	eventPub ports.EventPublisher
	logger   watermill.LoggerAdapter

	resultTTL time.Duration

	// group collapses concurrent Verify calls per token. Callers that
	// observe an in-flight verification all receive its result.
	group singleflight.Group
}

// NewChecker creates a new verification checker. eventPub may be nil when
// no event transport is wired. A non-positive ttl falls back to the default
// result TTL.
func NewChecker(
	verifier ports.Verifier,
	store ports.ResultStore,
	eventPub ports.EventPublisher,
	logger watermill.LoggerAdapter,
	ttl time.Duration,
) *Checker {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if ttl <= 0 {
		ttl = core.DefaultResultTTL
	}
	return &Checker{
		verifier:  verifier,
		store:     store,
		eventPub:  eventPub,
		logger:    logger,
		resultTTL: ttl,
	}
}

// Check reports whether a token passes verification. It never returns an
// error: transport failures, decode failures and explicit rejections all
// resolve to false. Failed attempts are not cached, so the next caller
// starts a fresh verification; successes are cached for the result TTL.
//
// Token presence is the caller's responsibility; Check treats whatever it
// receives as an opaque key.
func (c *Checker) Check(ctx context.Context, token string) bool {
	if ok, found, err := c.store.Get(ctx, token); err != nil {
		// A broken store degrades to a cache miss, never to a rejection
		c.logger.Error("result store read failed", err, watermill.LogFields{
			"token_digest": core.TokenDigest(token),
		})
	} else if found {
		c.publish(ctx, token, ok, true)
		return ok
	}

	result, err, _ := c.group.Do(token, func() (interface{}, error) {
		// Once started, the verification always completes; only the
		// verifier's own client timeout bounds it.
		return c.settle(context.WithoutCancel(ctx), token)
	})
	if err != nil {
		c.logger.Error("verification failed", err, watermill.LogFields{
			"token_digest": core.TokenDigest(token),
		})
		c.publish(ctx, token, false, false)
		return false
	}

	ok := result.(bool)
	c.publish(ctx, token, ok, false)
	return ok
}

// settle runs the single outbound verification and caches a success
func (c *Checker) settle(ctx context.Context, token string) (bool, error) {
	ok, err := c.verifier.Verify(ctx, token)
	if err != nil {
		return false, err
	}

	if ok {
		if err := c.store.Set(ctx, token, true, c.resultTTL); err != nil {
			// The caller still gets its result; only the cache is lost
			c.logger.Error("result store write failed", err, watermill.LogFields{
				"token_digest": core.TokenDigest(token),
			})
		}
	}

	return ok, nil
}

// publish emits a verification event, fire-and-forget
func (c *Checker) publish(ctx context.Context, token string, ok bool, cached bool) {
	if c.eventPub == nil {
		return
	}

	event := ports.VerificationEvent{
		TokenDigest: core.TokenDigest(token),
		OK:          ok,
		Cached:      cached,
	}
	if err := c.eventPub.PublishVerification(ctx, event); err != nil {
		c.logger.Error("failed to publish verification event", err, nil)
	}
}
