package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationChecker decides whether a verified token has been revoked.
type RevocationChecker interface {
	// CheckRevoked returns ErrTokenRevoked when a token for subject issued at
	// issuedAt is no longer accepted.
	CheckRevoked(ctx context.Context, subject string, issuedAt time.Time) error
}

// NoopRevocationChecker accepts every token. It is used when no revocation
// store is configured.
type NoopRevocationChecker struct{}

func (NoopRevocationChecker) CheckRevoked(context.Context, string, time.Time) error {
	return nil
}

const revokedKeyPrefix = "revoked:"

// revocationStore is the subset of redis.Cmdable used by the checker.
type revocationStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisRevocationChecker reads per-subject revocation marks from Redis.
//
// The value under "revoked:<subject>" is a unix time in seconds. Tokens
// issued strictly before it are revoked. A missing key means the subject has
// never been revoked. Any other Redis failure is reported as
// ErrVerificationUnavailable.
type RedisRevocationChecker struct {
	store revocationStore
}

func NewRedisRevocationChecker(client redis.Cmdable) *RedisRevocationChecker {
	return &RedisRevocationChecker{store: client}
}

func (c *RedisRevocationChecker) CheckRevoked(ctx context.Context, subject string, issuedAt time.Time) error {
	validAfter, err := c.store.Get(ctx, revokedKeyPrefix+subject).Int64()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: error reading revocation mark: %w", ErrVerificationUnavailable, err)
	}

	if issuedAt.Unix() < validAfter {
		return ErrTokenRevoked
	}
	return nil
}
