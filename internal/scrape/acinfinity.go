package scrape

// AC Infinity runs a Shopify-style storefront; selectors vary between
// their product templates, hence the fallback chains.
var acInfinityProfile = &siteProfile{
	name: "acinfinity",
	host: "acinfinity.com",
	nameSelectors: []string{
		"h1.product-title",
		"h1.product__title",
		".product-name h1",
		"h1",
	},
	priceSelectors: []string{
		"span.price .amount",
		".product-price",
		"span.money",
		".price",
	},
	descSelectors: []string{
		".product-description",
		".product__description",
		"#description",
		".rte",
	},
	imageSelectors: []string{
		".product-image img",
		".product__media img",
		"img.product-featured-image",
		".product-gallery img",
	},
	// AC Infinity only sells its own gear
	defaultBrand: "AC Infinity",
}
