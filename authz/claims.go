package authz

import (
	"github.com/golang-jwt/jwt/v5"
)

// DefaultPermissionsClaim is the claim ClaimsChecker reads permission
// patterns from.
const DefaultPermissionsClaim = "permissions"

// ClaimsChecker is a Checker whose subject is a signed JWT. The token's
// permissions claim carries the subject's permission patterns, so no
// server-side permission store is needed.
type ClaimsChecker struct {
	secret []byte
	claim  string
}

// NewClaimsChecker creates a ClaimsChecker verifying HMAC-signed tokens
// with the given secret, reading patterns from DefaultPermissionsClaim.
func NewClaimsChecker(secret []byte) *ClaimsChecker {
	return &ClaimsChecker{secret: secret, claim: DefaultPermissionsClaim}
}

// WithClaim changes the claim the permission patterns are read from.
func (c *ClaimsChecker) WithClaim(name string) *ClaimsChecker {
	c.claim = name
	return c
}

// HasPermission implements Checker. The subject is the raw signed token;
// verification failure means no permissions.
func (c *ClaimsChecker) HasPermission(subject string, required string) bool {
	token, err := jwt.Parse(subject, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	raw, ok := claims[c.claim].([]any)
	if !ok {
		return false
	}
	patterns := make([]string, 0, len(raw))
	for _, p := range raw {
		if s, ok := p.(string); ok {
			patterns = append(patterns, s)
		}
	}
	return MatchAny(patterns, required)
}
