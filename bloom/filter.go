// Package bloom provides URL deduplication backed by a Bloom filter.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate is the false positive rate used by NewURLSet.
const DefaultFalsePositiveRate = 0.001

// URLSet remembers which pages have been seen. URLs naming the same page
// (differing only by fragment or by the case of scheme and host) count as
// one entry. A small fraction of unseen URLs may be reported as seen;
// a seen URL is never reported as unseen.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs.
func NewURLSet(n uint) *URLSet {
	return NewURLSetWithRate(n, DefaultFalsePositiveRate)
}

// NewURLSetWithRate creates a set sized for n expected URLs with the given
// false positive rate.
func NewURLSetWithRate(n uint, fpRate float64) *URLSet {
	if n == 0 {
		n = 1
	}
	return &URLSet{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records the page and reports whether it was new.
func (s *URLSet) Add(rawURL string) bool {
	return !s.f.TestAndAddString(Normalize(rawURL))
}

// Contains reports whether the page may have been added.
func (s *URLSet) Contains(rawURL string) bool {
	return s.f.TestString(Normalize(rawURL))
}

// Len returns the approximate number of distinct pages added.
func (s *URLSet) Len() uint {
	return uint(s.f.ApproximatedSize())
}

// Normalize returns the deduplication key of a URL: the fragment is
// dropped and scheme and host are lowercased. Unparsable input is only
// stripped of its fragment.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if idx := strings.Index(rawURL, "#"); idx != -1 {
			return rawURL[:idx]
		}
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
