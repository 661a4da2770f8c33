package extractor

import (
	"net/url"
	"reflect"
	"testing"
)

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected []string
	}{
		{"Single key", "https://example.com/search?q=test", []string{"q"}},
		{"Multiple keys", "https://example.com/?page=1&sort=asc&dir=up", []string{"page", "sort", "dir"}},
		{"Empty value kept", "https://example.com/?token=", []string{"token"}},
		{"Pair without equals skipped", "https://example.com/?flag&id=2", []string{"id"}},
		{"Empty key skipped", "https://example.com/?=orphan&a=1", []string{"a"}},
		{"No query", "https://example.com/path", nil},
		{"Encoded key decoded", "https://example.com/?user%5Bname%5D=x", []string{"user[name]"}},
		{"Repeated key reported twice", "https://example.com/?a=1&a=2", []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.rawURL)
			if err != nil {
				t.Fatalf("Failed to parse URL: %v", err)
			}
			got := QueryParams(u)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("QueryParams(%s) = %v, want %v", tt.rawURL, got, tt.expected)
			}
		})
	}
}

func TestQueryParamsNilURL(t *testing.T) {
	if got := QueryParams(nil); got != nil {
		t.Errorf("QueryParams(nil) = %v, want nil", got)
	}
}
