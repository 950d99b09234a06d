package utils

import (
	"regexp"

	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

// domainRegex matches a bare domain name (no scheme, no path).
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// IsValidDomainName reports whether s looks like a registrable domain name.
func IsValidDomainName(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	return domainRegex.MatchString(s)
}

// ValidateDomainName returns a validation error when s is not a plausible
// domain name.
func ValidateDomainName(s string) error {
	if !IsValidDomainName(s) {
		return errors.NewValidationError("name must be a valid domain name")
	}
	return nil
}
