package authz

import "strings"

// MatchPattern checks if a permission pattern matches a required permission.
// Supports "resource:action" format with wildcards:
//
//   - "*:*"          matches everything
//   - "account:*"    matches "account:read", "account:write", etc.
//   - "*:read"       matches "account:read", "report:read", etc.
//   - "account:read" matches only "account:read"
//
// Both pattern and required use ":" as the separator.
// If either doesn't contain ":", they are compared as plain strings with wildcard support.
func MatchPattern(pattern, required string) bool {
	return match(pattern, required, ":")
}

// MatchMethod checks if a method pattern matches an invoked method name.
// Method names use "Type.Method" form:
//
//   - "*"                matches everything
//   - "Account.*"        matches every method on Account
//   - "*.Close"          matches Close on any type
//   - "Account.Withdraw" matches only Account.Withdraw
func MatchMethod(pattern, method string) bool {
	return match(pattern, method, ".")
}

// MatchAny returns true if any of the patterns match the required permission.
func MatchAny(patterns []string, required string) bool {
	for _, p := range patterns {
		if MatchPattern(p, required) {
			return true
		}
	}
	return false
}

// match compares pattern and value split on sep, with "*" matching any segment.
func match(pattern, value, sep string) bool {
	// Exact match or universal wildcard
	if pattern == value || pattern == "*" || pattern == "*"+sep+"*" {
		return true
	}

	patParts := strings.SplitN(pattern, sep, 2)
	valParts := strings.SplitN(value, sep, 2)

	// Both must have the same format
	if len(patParts) != len(valParts) {
		// Pattern has separator but value doesn't (or vice versa) — plain comparison
		return matchWildcard(pattern, value)
	}

	if len(patParts) == 1 {
		return matchWildcard(pattern, value)
	}

	return matchWildcard(patParts[0], valParts[0]) && matchWildcard(patParts[1], valParts[1])
}

// matchWildcard compares two strings where "*" matches anything.
func matchWildcard(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
