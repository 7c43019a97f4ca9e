package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL trims and validates a URL string, returning a normalized value
// or an error if the URL is empty or invalid.
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("URL is required")
	}
	if _, err := url.Parse(s); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return s, nil
}

// ValidateBaseURL checks that raw is an absolute http(s) address and strips
// any trailing slash.
func ValidateBaseURL(raw string) (string, error) {
	s, err := ValidateURL(raw)
	if err != nil {
		return "", err
	}
	u, _ := url.Parse(s)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid backend URL %q: scheme must be http or https", s)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid backend URL %q: missing host", s)
	}
	return strings.TrimSuffix(s, "/"), nil
}
