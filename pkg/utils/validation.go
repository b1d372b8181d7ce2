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

// ValidateBaseURL is ValidateURL plus the requirement that the value is an
// absolute http(s) URL, as needed for the API host.
func ValidateBaseURL(raw string) (string, error) {
	s, err := ValidateURL(raw)
	if err != nil {
		return "", err
	}
	u, _ := url.Parse(s)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid URL: scheme must be http or https")
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL: missing host")
	}
	return strings.TrimSuffix(s, "/"), nil
}
