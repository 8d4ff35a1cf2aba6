package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// IDPattern defines the accepted upstream entity id format. SpaceX ids are
// 24-character hex object ids, but any path-safe token is allowed.
var IDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateID checks if an upstream id is safe to place in a request path.
func ValidateID(id string) bool {
	if id == "" || len(id) > 100 {
		return false
	}
	return IDPattern.MatchString(id)
}

// ValidateBaseURL checks the upstream base URL is absolute and uses http/https.
func ValidateBaseURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return false, "URL must not contain a query or fragment"
	}

	return true, ""
}

// NormalizeBaseURL strips trailing slashes so paths can be appended directly.
func NormalizeBaseURL(urlStr string) string {
	return strings.TrimRight(urlStr, "/")
}
