package util

import (
	"fmt"
	"net/url"
)

// ValidateBackendURL checks that raw is an absolute http(s) URL with a
// host and no query or fragment, since request paths are appended to it.
func ValidateBackendURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("backend URL must not be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("backend URL %q is not a valid URL: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("backend URL %q must not contain a query or fragment", raw)
	}

	return nil
}
