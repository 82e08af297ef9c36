// Package fetch - blocked.go detects anti-scraping responses.
package fetch

import (
	"net/http"
	"strings"
)

// challengeMarkers are body substrings that indicate a bot-challenge page
// even when the status code is 200.
var challengeMarkers = []string{
	"captcha",
	"cf-challenge",
	"just a moment...",
	"verify you are human",
	"are you a robot",
	"access denied",
	"pardon our interruption",
}

// IsBlocked reports whether a response indicates an anti-scraping defense,
// plus a short reason for logging.
func IsBlocked(statusCode int, html string) (bool, string) {
	switch statusCode {
	case http.StatusForbidden:
		return true, "HTTP 403"
	case http.StatusTooManyRequests:
		return true, "HTTP 429"
	}

	// Challenge pages are short; don't scan large legitimate documents
	if len(html) > 20000 {
		return false, ""
	}

	lower := strings.ToLower(html)
	for _, marker := range challengeMarkers {
		if strings.Contains(lower, marker) {
			return true, "challenge page"
		}
	}

	return false, ""
}
