package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/readmode/bloom"
	"github.com/stretchr/testify/assert"
)

func TestURLSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("reports new URLs once", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewURLSet(100)

		assert.True(t, s.Add("https://example.com/page1"))
		assert.False(t, s.Add("https://example.com/page1"))
		assert.True(t, s.Add("https://example.com/page2"))
	})

	t.Run("treats fragments as the same page", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewURLSet(100)

		assert.True(t, s.Add("https://example.com/guide#intro"))
		assert.False(t, s.Add("https://example.com/guide#setup"))
		assert.False(t, s.Add("https://example.com/guide"))
	})

	t.Run("ignores case of scheme and host", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewURLSet(100)

		assert.True(t, s.Add("https://Example.COM/Path"))
		assert.False(t, s.Add("HTTPS://example.com/Path"))
		assert.True(t, s.Add("https://example.com/path"), "path case is significant")
	})

	t.Run("accepts a zero size", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewURLSet(0)

		assert.True(t, s.Add("https://example.com"))
		assert.True(t, s.Contains("https://example.com"))
	})
}

func TestURLSet_Contains(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000)

	assert.False(t, s.Contains("https://example.com/page1"))

	s.Add("https://example.com/page1")

	assert.True(t, s.Contains("https://example.com/page1"))
	assert.True(t, s.Contains("https://example.com/page1#top"))
	assert.False(t, s.Contains("https://example.com/page2"))
}

func TestURLSet_Len(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000)
	assert.Equal(t, uint(0), s.Len())

	s.Add("https://example.com/page1")
	s.Add("https://example.com/page2")
	s.Add("https://example.com/page3")
	s.Add("https://example.com/page3#again")

	count := s.Len()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/a?b=1", bloom.Normalize("HTTPS://EXAMPLE.com/a?b=1#frag"))
	assert.Equal(t, "http://[::1", bloom.Normalize("http://[::1#x"))
}

func TestURLSet_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	s := bloom.NewURLSetWithRate(numItems, fpRate)

	for i := range numItems {
		s.Add(fmt.Sprintf("https://example.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if s.Contains(fmt.Sprintf("https://example.com/notadded/%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
