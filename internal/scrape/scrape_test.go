package scrape

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr string
	}{
		{"acinfinity", "https://acinfinity.com/products/cloudline-t6", "acinfinity", ""},
		{"acinfinity www", "https://www.acinfinity.com/collections/fans", "acinfinity", ""},
		{"amazon", "https://www.amazon.com/dp/B07FDKQZQ9", "amazon", ""},
		{"unsupported", "https://www.ebay.com/itm/1234", "", "unsupported website"},
		{"garbage", "not a url", "", "invalid url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := profileFor(tt.url)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.name)
		})
	}
}

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$149.99", 149.99},
		{"$1,299.00", 1299},
		{"149.99", 149.99},
		{"", 0},
		{"No Price Available", 0},
		{"$149.99149.99", 149.99}, // duplicated price text
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanPrice(tt.in), "cleanPrice(%q)", tt.in)
	}
}

func TestCleanAmazonBrand(t *testing.T) {
	assert.Equal(t, "AC Infinity", cleanAmazonBrand("Visit the AC Infinity Store"))
	assert.Equal(t, "VIVOSUN", cleanAmazonBrand("Brand: VIVOSUN"))
	assert.Equal(t, "Spider Farmer", cleanAmazonBrand("  Spider Farmer "))
}

const amazonFixture = `<!DOCTYPE html>
<html><body>
  <span id="productTitle"> SF-2000 LED Grow Light </span>
  <div id="bylineInfo">Visit the Spider Farmer Store</div>
  <div id="corePrice_feature_div"><span class="a-offscreen">$299.99</span></div>
  <div id="feature-bullets">Full spectrum, dimmable driver</div>
  <img id="landingImage" src="https://img.example/sf2000.jpg"/>
</body></html>`

func TestScrapeWithProfileAmazonFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(amazonFixture))
	}))
	defer srv.Close()

	comp, err := New().scrapeWithProfile(amazonProfile, srv.URL+"/dp/B08TEST")
	require.NoError(t, err)

	assert.Equal(t, "SF-2000 LED Grow Light", comp.Name)
	assert.Equal(t, "Spider Farmer", comp.Brand)
	assert.Equal(t, 299.99, comp.Price)
	assert.Equal(t, "led-light", comp.Category)       // derived from name
	assert.Equal(t, 200, comp.PowerConsumption)       // derived from name
	assert.Equal(t, "Full spectrum, dimmable driver", comp.Description)
	assert.Equal(t, "https://img.example/sf2000.jpg", comp.ImageURL)
	assert.Equal(t, srv.URL+"/dp/B08TEST", comp.AffiliateURL)
	assert.False(t, comp.IsCustom)
}

func TestScrapeWithProfileSelectorFallback(t *testing.T) {
	// no #corePrice_feature_div; the .a-price fallback must win
	page := `<html><body>
	  <span id="productTitle">4 Inch Inline Fan</span>
	  <span class="a-price"><span class="a-offscreen">$39.99</span></span>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	comp, err := New().scrapeWithProfile(amazonProfile, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 39.99, comp.Price)
	assert.Equal(t, "Unknown", comp.Brand) // no byline anywhere
	assert.Equal(t, "ventilation", comp.Category)
	assert.Equal(t, 45, comp.PowerConsumption)
}

func TestScrapeWithProfileExtractionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>nothing useful</p></body></html>`))
	}))
	defer srv.Close()

	comp, err := New().scrapeWithProfile(amazonProfile, srv.URL)
	require.Error(t, err)
	assert.Nil(t, comp)
	assert.Contains(t, err.Error(), "failed to extract product data")
}

func TestScrapeWithProfileFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	comp, err := New().scrapeWithProfile(amazonProfile, srv.URL)
	require.Error(t, err)
	assert.Nil(t, comp)
	assert.Contains(t, err.Error(), "failed to fetch page: 404")
}

func TestScrapeUnsupportedHostNoNetworkCall(t *testing.T) {
	comp, err := New().Scrape("https://www.ebay.com/itm/1234")
	require.Error(t, err)
	assert.Nil(t, comp)
	assert.Contains(t, err.Error(), "unsupported website")
}
