package models

// Category identifies a dataset catalog section. "all" is a filter
// wildcard, not a value a dataset may carry.
type Category string

const (
	CategoryAll               Category = "all"
	CategoryLocationData      Category = "location-data"
	CategoryMarketTrends      Category = "market-trends"
	CategoryBuyerDemographics Category = "buyer-demographics"
	CategoryCommercial        Category = "commercial"
	CategoryGeoAnalytics      Category = "geo-analytics"
	CategoryRental            Category = "rental"
	CategoryInvestment        Category = "investment"
)

// DataAge describes how recent the underlying records are.
type DataAge string

const (
	DataAgeUnderOneMonth  DataAge = "Less than 1 month"
	DataAgeOneToThree     DataAge = "1-3 months"
	DataAgeThreeToSix     DataAge = "3-6 months"
	DataAgeSixToTwelve    DataAge = "6-12 months"
)

// PreviewType selects how sample data is rendered on a dataset card.
type PreviewType string

const (
	PreviewTable PreviewType = "table"
	PreviewChart PreviewType = "chart"
	PreviewRadar PreviewType = "radar"
)

// SamplePoint is one row of numeric preview data for chart and radar
// previews. Zero-valued metrics are omitted from JSON so each preview
// only carries the series it actually plots.
type SamplePoint struct {
	Area          string  `json:"area"`
	AveragePrice  float64 `json:"averagePrice,omitempty"`
	OccupancyRate float64 `json:"occupancyRate,omitempty"`
	DemandScore   float64 `json:"demandScore,omitempty"`
	SupplyScore   float64 `json:"supplyScore,omitempty"`
	ROIScore      float64 `json:"roiScore,omitempty"`
}

// Preview holds the small sample shown when a card is expanded. Table
// previews use Columns/Rows; chart and radar previews use Points.
type Preview struct {
	Type    PreviewType   `json:"type"`
	Columns []string      `json:"columns,omitempty"`
	Rows    [][]string    `json:"rows,omitempty"`
	Points  []SamplePoint `json:"points,omitempty"`
}

// Dataset is a catalog entry. Prices are whole rupees. Format is a
// comma-delimited list of export formats; membership checks against it
// are substring based. Location, when set, is a finer-grained label
// under Region and also satisfies region filters naming it.
type Dataset struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Icon          string      `json:"icon"`
	Price         int         `json:"price"`
	OriginalPrice int         `json:"originalPrice,omitempty"`
	Records       string      `json:"records"`
	LastUpdated   string      `json:"lastUpdated"`
	Badge         string      `json:"badge,omitempty"`
	Format        string      `json:"format"`
	Location      string      `json:"location,omitempty"`
	Fields        []string    `json:"fields"`
	Category      Category    `json:"category"`
	Region        string      `json:"region"`
	DataAge       DataAge     `json:"dataAge"`
	Preview       Preview     `json:"preview"`
}

// FilterState is the transient filter selection for the data store
// page. Empty attribute slices mean no constraint on that attribute.
type FilterState struct {
	Category Category  `json:"category"`
	Search   string    `json:"search"`
	PriceMin int       `json:"priceMin"`
	PriceMax int       `json:"priceMax"`
	Formats  []string  `json:"formats"`
	Regions  []string  `json:"regions"`
	DataAges []DataAge `json:"dataAges"`
}

// CategoryOption pairs a category id with its display name and icon
// tag for the store sidebar.
type CategoryOption struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// FilterOptions lists the selectable values for each attribute filter.
type FilterOptions struct {
	Formats  []string  `json:"formats"`
	Regions  []string  `json:"regions"`
	DataAges []DataAge `json:"dataAges"`
}
