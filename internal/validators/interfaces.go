// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw request input into validated domain values.
//
// Core concepts:
//   - BuildListQuery: parses list query parameters into a models.ListQuery,
//     collecting one FieldError per invalid parameter.
//   - Validator: generic interface to validate already-built values.
//     Supports optional field-level scoping for targeted validation.
//
// Every rejection is a *ValidationError so the transport layer can answer
// with a single structured response listing all offending fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
