package github

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
var validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if !validOwner.MatchString(owner) {
		return errors.New("invalid owner format: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	return nil
}

// escapePath percent-encodes each segment of a slash-separated path while
// keeping the separators, so branch names like "release/1.x" and nested
// file paths stay addressable.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
