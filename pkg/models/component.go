package models

// BuildComponent is the normalized, internal form of a catalog entry
// used by the scraper, CSV importer and database layer.
//
// All ingestion paths (scrape, CSV, manual entry) are mapped into this
// structure first, then we write to the DB from this representation.
type BuildComponent struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Brand            string         `json:"brand"`
	Category         string         `json:"category"`
	Price            float64        `json:"price"`
	PowerConsumption int            `json:"power_consumption"` // watts
	Description      string         `json:"description"`
	ImageURL         string         `json:"image_url,omitempty"`
	AffiliateURL     string         `json:"affiliate_url,omitempty"`
	Specifications   map[string]any `json:"specifications,omitempty"` // string|number values
	Compatibility    []string       `json:"compatibility,omitempty"`  // category tags or component ids
	Dimensions       Dimensions     `json:"dimensions"`
	Weight           float64        `json:"weight"` // kilograms
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"review_count"`
	IsCustom         bool           `json:"is_custom"` // true for user-authored entries
}

// Dimensions are in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BuildComponentWithQuantity is a catalog entry selected into a build.
// Quantity is always >= 1 while the entry is present; setting it to 0
// removes the entry instead.
type BuildComponentWithQuantity struct {
	BuildComponent
	Quantity int `json:"quantity"`
}

// RawComponentRecord is the loosely-typed bag of fields produced by one
// ingestion source (a scraped page or a CSV row) before normalization.
// String fields hold whatever the source gave us; empty string means absent.
type RawComponentRecord struct {
	Name             string
	Brand            string
	Category         string
	Price            string
	PowerConsumption string
	Description      string
	ImageURL         string
	AffiliateURL     string
	Specifications   string // JSON object as text
	Compatibility    string // comma-separated list
	Dimensions       string // JSON object as text: {length,width,height}
	Weight           string
	Rating           string
	ReviewCount      string
}

// PowerCostCalculation is a derived value object; consumption is in kWh,
// costs in the caller's currency.
type PowerCostCalculation struct {
	DailyConsumption   float64 `json:"daily_consumption"`
	MonthlyConsumption float64 `json:"monthly_consumption"`
	DailyCost          float64 `json:"daily_cost"`
	MonthlyCost        float64 `json:"monthly_cost"`
	AnnualCost         float64 `json:"annual_cost"`
	ElectricityRate    float64 `json:"electricity_rate"`
}

// BuildConfiguration is a saved snapshot of a build session.
type BuildConfiguration struct {
	ID         string                                  `json:"id"`
	Name       string                                  `json:"name"`
	Components map[string][]BuildComponentWithQuantity `json:"components"` // keyed by category
	TotalCost  float64                                 `json:"total_cost"`
	TotalPower int                                     `json:"total_power"`
	CreatedAt  string                                  `json:"created_at,omitempty"`
}
