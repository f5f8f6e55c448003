package authn

import (
	"net/url"
	"strings"

	httpURL "github.com/bornholm/bbs/internal/http/url"
)

// SafeNext returns next if it designates a path local to the application,
// fallback otherwise.
func SafeNext(next string, fallback string) string {
	if next == "" {
		return fallback
	}

	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}

	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return fallback
	}

	return next
}

// NextURL resolves next against the application base url, falling back to
// the base url itself when next is not safe.
func NextURL(baseURL *url.URL, next string) string {
	parsed, err := url.Parse(SafeNext(next, "/"))
	if err != nil {
		return baseURL.String()
	}

	resolved := httpURL.Mutate(baseURL, httpURL.WithPath(parsed.Path), httpURL.WithValuesReset())
	resolved.RawQuery = parsed.RawQuery

	return resolved.String()
}
