package errors

import (
	"strings"
	"unicode"
)

// ValidateManifestFilename validates a manifest filename for the registry.
// Matching is done on base names, so the filename must not contain path
// separators.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidConfig, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidConfig, "manifest filename cannot contain path separators: %q", filename)
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "manifest filename contains invalid control characters")
		}
	}

	return nil
}

// ValidateDirName validates an excluded directory name. Exclusions are compared
// against single path segments, so separators can never match.
func ValidateDirName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "excluded directory name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidConfig, "excluded directory name cannot contain path separators: %q", name)
	}
	return nil
}

// ValidateURL validates a base URL string.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme: %q", rawURL)
	}

	return nil
}
