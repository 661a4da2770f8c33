package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parambuster/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Scanner: utils.ScannerConfig{
			Timeout:           "5s",
			MaxRetries:        0,
			RequestsPerSecond: 100,
			UserAgent:         "parambuster-test",
		},
	}
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "parambuster-test" {
			t.Errorf("Unexpected User-Agent: %s", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig())
	page, err := f.FetchPage(context.Background(), srv.URL+"/items/5?q=x")
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}

	if !strings.Contains(page.HTML, "ok") {
		t.Errorf("Unexpected body: %q", page.HTML)
	}
	if page.URL == nil || page.URL.Path != "/items/5" {
		t.Errorf("Unexpected parsed URL: %v", page.URL)
	}
	if page.URL.RawQuery != "q=x" {
		t.Errorf("Query component lost: %q", page.URL.RawQuery)
	}
}

func TestFetchPageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher(testConfig())
	if _, err := f.FetchPage(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for 403 response")
	}
}

func TestFetchPageInvalidURL(t *testing.T) {
	f := NewFetcher(testConfig())

	if _, err := f.FetchPage(context.Background(), "://not-a-url"); err == nil {
		t.Error("Expected error for unparseable URL")
	}
	if _, err := f.FetchPage(context.Background(), "ftp://example.com/file"); err == nil {
		t.Error("Expected error for unsupported scheme")
	}
}

func TestFetchPageCustomHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Missing Authorization header, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Cookie") != "session=abc" {
			t.Errorf("Missing Cookie header, got %q", r.Header.Get("Cookie"))
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig())
	f.SetDefaultHeader("Authorization", "Bearer tok")
	f.SetCookies("session=abc")

	if _, err := f.FetchPage(context.Background(), srv.URL); err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
}
