package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"parambuster/pkg/extractor"
	"parambuster/pkg/utils"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves a single page body for the extraction engine. It
// follows redirects and handles TLS; all heuristics live downstream in
// the extractor, which never touches the network itself.
type Fetcher struct {
	client  *resty.Client
	limiter *RateLimiter
}

func NewFetcher(config *utils.Config) *Fetcher {
	r := resty.New()

	timeout, err := time.ParseDuration(config.Scanner.Timeout)
	if err != nil {
		timeout = 10 * time.Second
	}
	r.SetTimeout(timeout)
	r.SetRetryCount(config.Scanner.MaxRetries)

	if config.Scanner.SkipSSL {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if config.Scanner.UserAgent != "" {
		r.SetHeader("User-Agent", config.Scanner.UserAgent)
	}

	delay, _ := time.ParseDuration(config.Scanner.Delay)
	rps := config.Scanner.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &Fetcher{
		client:  r,
		limiter: NewRateLimiter(rps, delay),
	}
}

// SetDefaultHeader adds a header to every request.
func (f *Fetcher) SetDefaultHeader(key, value string) {
	f.client.SetHeader(key, value)
}

// SetCookies attaches a raw Cookie header to every request.
func (f *Fetcher) SetCookies(cookies string) {
	f.client.SetHeader("Cookie", cookies)
}

// FetchPage retrieves one page and packages it for the extractor. A
// non-2xx status is an error: there is nothing meaningful to extract
// from a block page and the caller must exit non-zero on fetch
// failures.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (extractor.PageSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return extractor.PageSource{}, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return extractor.PageSource{}, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return extractor.PageSource{}, err
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return extractor.PageSource{}, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	if resp.IsError() {
		return extractor.PageSource{}, fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status())
	}

	return extractor.PageSource{URL: u, HTML: string(resp.Body())}, nil
}
