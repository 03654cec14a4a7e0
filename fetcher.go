package readmode

import "context"

// Fetcher retrieves raw HTML from URLs.
// Only server-rendered markup is returned; scripts are never executed.
type Fetcher interface {
	// Fetch retrieves the HTML served at url.
	// The context controls timeout and cancellation.
	// Returns ETIMEOUT when the request times out and EUNAVAILABLE when
	// the host cannot be reached.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
