package scrape

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"growhub/internal/ingest"
	"growhub/pkg/models"
)

// browserUA is sent on every fetch; both supported shops serve a reduced
// page to obvious bot agents.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// siteProfile describes how to pull product fields out of one shop's
// pages. Each field has an ordered selector fallback chain; the first
// selector yielding a non-empty result wins.
type siteProfile struct {
	name           string
	host           string // substring matched against the URL host
	nameSelectors  []string
	priceSelectors []string
	descSelectors  []string
	imageSelectors []string
	brandSelectors []string
	defaultBrand   string
	cleanBrand     func(string) string
}

var profiles = []*siteProfile{acInfinityProfile, amazonProfile}

type Scraper struct {
	Timeout time.Duration
}

func New() *Scraper {
	return &Scraper{Timeout: 15 * time.Second}
}

// Scrape fetches one product page and maps it into a BuildComponent.
// Exactly one GET per call, no retries, no caching. Unsupported hosts
// fail before any network traffic.
func (s *Scraper) Scrape(rawURL string) (*models.BuildComponent, error) {
	profile, err := profileFor(rawURL)
	if err != nil {
		return nil, err
	}
	return s.scrapeWithProfile(profile, rawURL)
}

// profileFor picks the site profile for a URL, or fails for unknown hosts.
func profileFor(rawURL string) (*siteProfile, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	host := strings.ToLower(u.Host)
	for _, p := range profiles {
		if strings.Contains(host, p.host) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported website %q (supported: acinfinity.com, amazon.com)", u.Host)
}

type extracted struct {
	name        string
	brand       string
	price       string
	description string
	imageURL    string
}

func (s *Scraper) scrapeWithProfile(profile *siteProfile, rawURL string) (*models.BuildComponent, error) {
	c := colly.NewCollector(colly.UserAgent(browserUA))
	c.SetRequestTimeout(s.Timeout)

	var (
		got         extracted
		fetchStatus int
	)

	c.OnHTML("html", func(e *colly.HTMLElement) {
		got = extractFields(e.DOM, profile)
	})

	c.OnError(func(r *colly.Response, _ error) {
		fetchStatus = r.StatusCode
	})

	log.Printf("[scrape] fetching %s via %s profile", rawURL, profile.name)
	visitErr := c.Visit(rawURL)
	c.Wait()

	if fetchStatus != 0 && (fetchStatus < 200 || fetchStatus > 299) {
		return nil, fmt.Errorf("failed to fetch page: %d", fetchStatus)
	}
	if visitErr != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", visitErr)
	}

	price := cleanPrice(got.price)
	if got.name == "" || price == 0 {
		return nil, fmt.Errorf("failed to extract product data from the page")
	}

	brand := got.brand
	if profile.cleanBrand != nil {
		brand = profile.cleanBrand(brand)
	}
	if brand == "" {
		brand = profile.defaultBrand
	}

	comp, err := ingest.Normalize(models.RawComponentRecord{
		Name:         got.name,
		Brand:        brand,
		Price:        strconv.FormatFloat(price, 'f', -1, 64),
		Description:  got.description,
		ImageURL:     got.imageURL,
		AffiliateURL: rawURL,
	})
	if err != nil {
		return nil, fmt.Errorf("normalize scraped product: %w", err)
	}
	return comp, nil
}

func extractFields(doc *goquery.Selection, profile *siteProfile) extracted {
	return extracted{
		name:        firstText(doc, profile.nameSelectors),
		brand:       firstText(doc, profile.brandSelectors),
		price:       firstText(doc, profile.priceSelectors),
		description: firstText(doc, profile.descSelectors),
		imageURL:    firstAttr(doc, profile.imageSelectors, "src"),
	}
}

// firstText walks the selector chain and returns the first non-empty text.
func firstText(doc *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func firstAttr(doc *goquery.Selection, selectors []string, attr string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// cleanPrice strips currency symbols and commas from scraped price text
// and returns 0 when nothing parses.
func cleanPrice(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	replacer := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")
	text = replacer.Replace(text)

	// some shops render "99.9999.99" style duplicated prices; keep the
	// leading number only
	if i := secondDotIndex(text); i > 0 {
		text = text[:i]
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func secondDotIndex(s string) int {
	first := strings.Index(s, ".")
	if first < 0 {
		return -1
	}
	rest := strings.Index(s[first+1:], ".")
	if rest < 0 {
		return -1
	}
	// cut after two decimals of the first price
	end := first + 3
	if end > len(s) {
		return -1
	}
	return end
}
