// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// env-metrics HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "Environmental Metrics API"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer credential.
	MsgNotAuthenticated = "Not authenticated"

	// MsgAuthNotConfigured is returned while the token verifier has no
	// provider credentials.
	MsgAuthNotConfigured = "Firebase authentication is not configured. Please contact administrator."

	// MsgMissingUserID is returned for a valid token without a subject.
	MsgMissingUserID = "Invalid token: missing user ID"

	// MsgInvalidToken is returned for malformed or badly signed tokens.
	MsgInvalidToken = "Invalid authentication token"

	// MsgTokenExpired is returned when the token's expiry has passed.
	MsgTokenExpired = "Authentication token has expired"

	// MsgTokenRevoked is returned when the token was revoked.
	MsgTokenRevoked = "Authentication token has been revoked"

	// MsgVerificationUnavailable is returned when signing keys or revocation
	// state cannot be obtained.
	MsgVerificationUnavailable = "Unable to verify token. Please try again later."

	// MsgValidationError is the "detail" of every 422 response.
	MsgValidationError = "Validation error"

	// MsgNotFound is returned for unknown paths, methods and views.
	MsgNotFound = "Not Found"

	// MsgDatabaseError is returned when a storage call fails.
	MsgDatabaseError = "A database error occurred. Please try again later."

	// MsgUnexpectedError is returned for every other failure.
	MsgUnexpectedError = "An unexpected error occurred. Please try again later."
)
