package scrape

import "strings"

var amazonProfile = &siteProfile{
	name: "amazon",
	host: "amazon.com",
	nameSelectors: []string{
		"#productTitle",
		"#title span",
	},
	priceSelectors: []string{
		"#corePrice_feature_div .a-offscreen",
		".a-price .a-offscreen",
		"#priceblock_ourprice",
		"#priceblock_dealprice",
	},
	descSelectors: []string{
		"#feature-bullets",
		"#productDescription p",
		"#productDescription",
	},
	imageSelectors: []string{
		"#landingImage",
		"#imgBlkFront",
		"#main-image",
	},
	brandSelectors: []string{
		"#bylineInfo",
		"a#brand",
		".po-brand .po-break-word",
	},
	defaultBrand: "Unknown",
	cleanBrand:   cleanAmazonBrand,
}

// cleanAmazonBrand strips the byline decorations Amazon wraps around the
// brand name ("Visit the X Store", "Brand: X").
func cleanAmazonBrand(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Brand: ")
	s = strings.TrimPrefix(s, "Visit the ")
	s = strings.TrimSuffix(s, " Store")
	return strings.TrimSpace(s)
}
