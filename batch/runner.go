// Package batch extracts reading-mode documents for many URLs at once.
// It deduplicates the input, limits the request rate per domain, retries
// transient fetch failures, and bounds the number of pages in flight.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner extracts documents for a list of URLs.
type Runner struct {
	Fetcher     readmode.Fetcher
	Extractor   readmode.Extractor
	RateLimiter readmode.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// Result holds the outcome for one input URL.
type Result struct {
	URL       string
	Document  *readmode.Document
	Duplicate bool
	Err       error
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress. It is always
// called from the goroutine that called Run.
type ProgressFunc func(event ProgressEvent)

type pageResult struct {
	position int
	doc      *readmode.Document
	err      error
}

// Run extracts every URL and returns one Result per input, in input order.
// URLs naming the same page are fetched once; later occurrences are marked
// Duplicate. Per-URL failures are reported in Result.Err and never
// stop the run.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	results := make([]Result, len(urls))

	seen := bloom.NewURLSet(uint(len(urls)))
	var pending []int
	for i, u := range urls {
		results[i].URL = u
		if !seen.Add(u) {
			results[i].Duplicate = true
			continue
		}
		pending = append(pending, i)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			g.Go(func() error {
				doc, err := r.processURL(gctx, urls[i])
				resultCh <- pageResult{position: i, doc: doc, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for res := range resultCh {
		completed.Add(1)
		results[res.position].Document = res.doc
		results[res.position].Err = res.err

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       urls[res.position],
		}
		if res.err != nil {
			event.Type = ProgressFailed
			event.Error = res.err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

// processURL fetches and extracts a single URL.
func (r *Runner) processURL(ctx context.Context, pageURL string) (*readmode.Document, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil, readmode.Errorf(readmode.EINVALID, "invalid URL %q", pageURL)
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, pageURL, r.Fetcher.Fetch, delays, r.OnRetry)
	if err != nil {
		return nil, err
	}

	return r.Extractor.Extract(html, pageURL)
}
