// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrUnconfigured is returned by every Verify call while the verifier has
	// no usable provider credentials.
	ErrUnconfigured = errors.New("identity provider is not configured")

	// ErrMissingSubject is returned for a verified token without a "sub" claim.
	ErrMissingSubject = errors.New("token has no subject")

	// ErrInvalidToken covers malformed tokens, bad signatures, unknown key ids
	// and audience or issuer mismatches.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's "exp" has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenRevoked is returned when the token was issued before the
	// subject's revocation mark.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrVerificationUnavailable is returned when signing keys or revocation
	// state could not be obtained.
	ErrVerificationUnavailable = errors.New("token verification is unavailable")
)

var (
	errUnknownKeyID     = errors.New("unknown key id")
	errNoKeys           = errors.New("no signing keys in provider response")
	errMissingProjectID = errors.New("credentials have no project_id")
	errEmptyCredential  = errors.New("empty credential")
)
