package models

// Principal is the authenticated identity derived from a verified bearer
// credential. It is created once per request by the token verifier (or by the
// test-mode bypass) and is never mutated afterwards.
type Principal struct {
	// ID is the subject ("sub") of the verified token, i.e. the identity
	// provider's user identifier.
	ID string `json:"id"`

	// Email is the optional "email" claim of the token.
	Email string `json:"email,omitempty"`

	// Claims holds the complete decoded claim set. No handler makes
	// authorization decisions on it yet; it is kept for future policies.
	Claims map[string]any `json:"-"`
}

// IsZero reports whether p carries no identity.
func (p Principal) IsZero() bool {
	return p.ID == ""
}
