// Package marketing serves the landing page's static content: pricing
// plans, feature highlights, and the mock analytics series behind the
// dashboard charts. Everything here is authored data; no computation
// happens beyond lookups.
package marketing

import "nestcrm-web/internal/models"

// Selectable ranges for the lead analytics chart.
const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// ChartPeriods are the ranges in display order.
var ChartPeriods = []string{PeriodMonth, PeriodQuarter, PeriodYear}

var leadSeries = map[string][]models.ChartPoint{
	PeriodMonth: {
		{Name: "Week 1", Leads: 420, Conversions: 280},
		{Name: "Week 2", Leads: 380, Conversions: 250},
		{Name: "Week 3", Leads: 520, Conversions: 320},
		{Name: "Week 4", Leads: 480, Conversions: 350},
	},
	PeriodQuarter: {
		{Name: "Jan", Leads: 1200, Conversions: 800},
		{Name: "Feb", Leads: 1400, Conversions: 950},
		{Name: "Mar", Leads: 1600, Conversions: 1100},
	},
	PeriodYear: {
		{Name: "Q1", Leads: 4200, Conversions: 2800},
		{Name: "Q2", Leads: 4800, Conversions: 3200},
		{Name: "Q3", Leads: 5200, Conversions: 3600},
		{Name: "Q4", Leads: 5800, Conversions: 4000},
	},
}

// LeadSeries returns the chart points for a period. Unknown periods
// fall back to the monthly view so the chart never renders empty.
func LeadSeries(period string) []models.ChartPoint {
	if series, ok := leadSeries[period]; ok {
		return series
	}
	return leadSeries[PeriodMonth]
}

// Metrics returns the headline metric cards for the analytics section.
func Metrics() []models.MetricCard {
	return []models.MetricCard{
		{Title: "Total Leads", Value: "2,547", Trend: "+12.5%", Icon: "Users"},
		{Title: "Conversion Rate", Value: "32.8%", Trend: "+2.4%", Icon: "Target"},
		{Title: "Avg. Response Time", Value: "2.4h", Trend: "-18%", Icon: "MessageSquare"},
		{Title: "Active Properties", Value: "1,283", Trend: "+8.1%", Icon: "Building"},
	}
}

// Plans returns the subscription pricing cards.
func Plans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			Name:          "Monthly",
			Price:         600,
			OriginalPrice: 900,
			Period:        "month",
			Icon:          "Users",
			Features: []string{
				"Basic Lead Management",
				"Email Support",
				"Mobile App Access",
				"Basic Analytics",
				"Performance Metrics",
				"Constant Updates",
			},
		},
		{
			Name:          "Yearly",
			Price:         350,
			OriginalPrice: 600,
			Period:        "month",
			Icon:          "Star",
			Popular:       true,
			Features: []string{
				"All Monthly Features",
				"Advanced Analytics",
				"Priority Support",
				"Spotlight Feature",
				"1-year price lock",
				"Custom Integrations",
			},
		},
		{
			Name:          "Quarterly",
			Price:         450,
			OriginalPrice: 800,
			Period:        "month",
			Icon:          "Calendar",
			Features: []string{
				"Partial Monthly Features",
				"Limited Analytics",
				"Standard Support",
				"Quarterly Billing",
				"Performance Metrics",
				"Constant Updates",
			},
		},
	}
}

// Features returns the landing-page feature highlights.
func Features() []models.Feature {
	return []models.Feature{
		{Icon: "UserPlus", Title: "Lead Management", Description: "Capture, nurture, and convert leads with our intelligent lead management system. Track every interaction and never miss an opportunity."},
		{Icon: "Building", Title: "Property Portfolio", Description: "Manage your entire property portfolio in one place. Track availability, pricing, and documentation with ease."},
		{Icon: "Share2", Title: "Team Collaboration", Description: "Enable seamless collaboration between team members. Share updates, assign tasks, and track performance in real-time."},
		{Icon: "Shield", Title: "Data Security", Description: "Enterprise-grade security to protect your sensitive data. Role-based access control and encrypted storage."},
		{Icon: "Zap", Title: "Automation", Description: "Automate repetitive tasks like follow-ups, document generation, and status updates to save valuable time."},
		{Icon: "PieChart", Title: "Analytics & Insights", Description: "Make data-driven decisions with comprehensive analytics and custom reports tailored to your needs."},
	}
}

// FAQs returns the data store's frequently asked questions.
func FAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "How often is the data updated?",
			Answer:   "Most of our datasets are updated on a weekly basis, with some specialized datasets being updated daily. Each dataset includes its last update date and update frequency information.",
		},
		{
			Question: "What formats are available for download?",
			Answer:   "Our datasets are available in multiple formats including CSV, Excel, JSON, and API access depending on the specific dataset. Some geo-spatial datasets also include GeoJSON formats.",
		},
		{
			Question: "Can I request custom datasets?",
			Answer:   "Yes, we offer custom data services for specific requirements. Please contact our data team through the WhatsApp button to discuss your specific needs and get a quote.",
		},
		{
			Question: "How is the data sourced and verified?",
			Answer:   "Our data is sourced from multiple channels including direct market surveys, partner real estate platforms, government records, and verified agent reports. All data undergoes a rigorous cleaning and verification process before being made available.",
		},
		{
			Question: "What are the license terms for using the data?",
			Answer:   "Each dataset comes with a commercial license that allows you to use the data within your organization. The license does not permit reselling the raw data or making it publicly available. Detailed license terms are provided with each dataset purchase.",
		},
	}
}

// LeadSources returns the acquisition channel distribution widget data.
func LeadSources() []models.LeadSource {
	return []models.LeadSource{
		{Name: "Pre Sales", Description: "Direct sales team outreach", Percentage: 40, Icon: "Users"},
		{Name: "MagicBricks", Description: "Real estate portal leads", Percentage: 30, Icon: "Globe"},
		{Name: "99acres", Description: "Online property marketplace", Percentage: 20, Icon: "Globe"},
		{Name: "Facebook Ads", Description: "Social media advertising", Percentage: 10, Icon: "Facebook"},
	}
}

// Pipeline returns the mock sales funnel stages.
func Pipeline() []models.PipelineStage {
	return []models.PipelineStage{
		{Name: "New Leads", Stage: "Initial Contact Stage", Leads: 5000, Percentage: 100, Icon: "Rocket"},
		{Name: "Qualified", Stage: "Evaluation Stage", Leads: 3500, Percentage: 70, Icon: "Target"},
		{Name: "Proposals", Stage: "Negotiation Stage", Leads: 2200, Percentage: 44, Icon: "FileText"},
		{Name: "Closed Deals", Stage: "Success Stage", Leads: 800, Percentage: 16, Icon: "CheckCircle"},
	}
}
