package extractor

import (
	"net/url"
	"strings"
)

// QueryParams extracts parameter names from the URL's query component.
// Pairs are split on the first "=" only; pairs without "=" or with an
// empty key are skipped. Every syntactically valid key is reported,
// with no further filtering.
func QueryParams(u *url.URL) []string {
	if u == nil || u.RawQuery == "" {
		return nil
	}

	var names []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		key, _, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		names = append(names, key)
	}
	return names
}
