package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// KeySet caches the provider's RSA signing keys, indexed by key id.
//
// Keys are trusted until the Cache-Control max-age of the response that
// delivered them runs out (or ttl when the header is absent). After that the
// next lookup refetches them; concurrent lookups share a single fetch and no
// lock is held while it is in flight. Expired keys are never served.
type KeySet struct {
	url    string
	client *utils.HTTPClient
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

// NewKeySet creates an empty KeySet that fetches from url with client.
func NewKeySet(url string, client *utils.HTTPClient, ttl time.Duration) *KeySet {
	return &KeySet{
		url:    url,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Key returns the public key for kid.
//
// It fails with ErrVerificationUnavailable when no fresh key material can be
// obtained and with ErrInvalidToken when kid is not among the current keys.
func (s *KeySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidToken, errUnknownKeyID, kid)
	}
	return key, nil
}

func (s *KeySet) current(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	s.mu.RLock()
	keys, expiresAt := s.keys, s.expiresAt
	s.mu.RUnlock()

	if keys != nil && s.now().Before(expiresAt) {
		return keys, nil
	}

	// The fetch is shared by every waiter, so it must outlive the caller that
	// started it. The client's timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("keys", func() (any, error) {
		return s.refresh(fetchCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}
	return v.(map[string]*rsa.PublicKey), nil
}

func (s *KeySet) refresh(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching signing keys: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching signing keys: unexpected status %d", resp.StatusCode())
	}

	var certs map[string]string
	if err := json.Unmarshal(resp.Body(), &certs); err != nil {
		return nil, fmt.Errorf("error decoding signing keys: %w", err)
	}
	if len(certs) == 0 {
		return nil, errNoKeys
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, cert := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cert))
		if err != nil {
			return nil, fmt.Errorf("error parsing signing key %q: %w", kid, err)
		}
		keys[kid] = key
	}

	ttl := s.ttl
	if maxAge, ok := parseMaxAge(resp.Header().Get("Cache-Control")); ok {
		ttl = maxAge
	}

	s.mu.Lock()
	s.keys = keys
	s.expiresAt = s.now().Add(ttl)
	s.mu.Unlock()

	return keys, nil
}

// parseMaxAge extracts the max-age directive of a Cache-Control header.
func parseMaxAge(header string) (time.Duration, bool) {
	for _, directive := range strings.Split(header, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(directive), "=")
		if !found || !strings.EqualFold(name, "max-age") {
			continue
		}
		seconds, err := strconv.Atoi(strings.Trim(value, `"`))
		if err != nil || seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}
	return 0, false
}
