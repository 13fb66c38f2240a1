// Package cli provides CLI infrastructure for sms.
package cli

import (
	"fmt"
	"strings"
)

// MatchOption finds a unique option from a prefix, case-insensitively.
// Returns the matched option or an error if ambiguous or no match.
func MatchOption(prefix string, options []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("empty value, expected one of: %s", strings.Join(options, ", "))
	}

	// First check for exact match
	for _, opt := range options {
		if strings.ToLower(opt) == prefix {
			return opt, nil
		}
	}

	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), prefix) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown value %q, expected one of: %s", prefix, strings.Join(options, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous value %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
