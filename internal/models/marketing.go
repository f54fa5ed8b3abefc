package models

// PricingPlan is one of the subscription cards on the landing page.
// Prices are rupees per month; OriginalPrice shows the struck-through
// anchor price.
type PricingPlan struct {
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Period        string   `json:"period"`
	Features      []string `json:"features"`
	Icon          string   `json:"icon"`
	Popular       bool     `json:"popular,omitempty"`
}

// Feature is a landing-page feature highlight.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChartPoint is one bucket of the mock lead-analytics series.
type ChartPoint struct {
	Name        string `json:"name"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"`
}

// MetricCard is a headline number with its trend label.
type MetricCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend string `json:"trend"`
	Icon  string `json:"icon"`
}

// LeadSource is one acquisition channel in the distribution widget.
type LeadSource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage"`
	Icon        string `json:"icon"`
}

// FAQ is one question/answer pair on the data store page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PipelineStage is one step of the mock sales funnel.
type PipelineStage struct {
	Name       string `json:"name"`
	Stage      string `json:"stage"`
	Leads      int    `json:"leads"`
	Percentage int    `json:"percentage"`
	Icon       string `json:"icon"`
}
