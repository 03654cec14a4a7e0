package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readmode"
)

// Site categories reported by Categorize.
const (
	CategoryNews          = "News"
	CategoryECommerce     = "E-Commerce"
	CategoryEducation     = "Education"
	CategoryTechnology    = "Technology"
	CategoryGovernment    = "Government"
	CategoryHealth        = "Health"
	CategoryEntertainment = "Entertainment"
	CategorySports        = "Sports"
	CategoryScience       = "Science"
	CategoryGeneral       = "General"
)

// categoryKeywords is checked in order; the first category with a keyword
// contained in the page description wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryNews, []string{"news", "media", "journal", "press", "report", "broadcast", "headline", "magazine", "publication"}},
	{CategoryECommerce, []string{"shop", "product", "buy", "ecommerce", "store", "sale", "retail", "marketplace", "shopping", "deal"}},
	{CategoryEducation, []string{"university", "education", "learning", "school", "college", "academy", "training", "tutorial", "course", "class"}},
	{CategoryTechnology, []string{"tech", "software", "ai", "startup", "developer", "programming", "app", "website", "innovation", "technology"}},
	{CategoryGovernment, []string{"government", "ministry", "state", "policy", "law", "official", "public sector", "regulation", "bureau"}},
	{CategoryHealth, []string{"health", "clinic", "doctor", "medicine", "hospital", "wellness", "treatment", "medical", "disease", "pharmacy"}},
	{CategoryEntertainment, []string{"movie", "film", "music", "entertainment", "tv", "celebrity", "show", "series", "concert", "game"}},
	{CategorySports, []string{"sport", "football", "cricket", "basketball", "tennis", "athlete", "tournament", "league", "match", "olympics"}},
	{CategoryScience, []string{"science", "research", "study", "experiment", "physics", "chemistry", "biology", "lab", "discovery"}},
}

// Categorize classifies the site serving pageURL from the keywords and
// descriptions in its meta tags. Matching is by substring, so short keywords
// like "ai" also match inside longer words.
func Categorize(rawHTML string, pageURL string) (*readmode.SiteInfo, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, readmode.Errorf(readmode.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readmode.Errorf(readmode.EMALFORMED, "failed to parse HTML: %v", err)
	}

	var parts []string
	for _, selector := range []string{
		`meta[name="keywords"]`,
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	} {
		if content := doc.Find(selector).First().AttrOr("content", ""); content != "" {
			parts = append(parts, strings.ToLower(content))
		}
	}

	return &readmode.SiteInfo{
		Site:          strings.TrimPrefix(u.Host, "www."),
		Category:      categorize(strings.Join(parts, " ")),
		PublishedDate: doc.Find(`meta[property="article:published_time"]`).First().AttrOr("content", ""),
	}, nil
}

func categorize(text string) string {
	if text == "" {
		return CategoryGeneral
	}
	for _, c := range categoryKeywords {
		for _, keyword := range c.keywords {
			if strings.Contains(text, keyword) {
				return c.category
			}
		}
	}
	return CategoryGeneral
}

// Categorize implements readmode.Categorizer.
func (e *Extractor) Categorize(rawHTML string, pageURL string) (*readmode.SiteInfo, error) {
	return Categorize(rawHTML, pageURL)
}
