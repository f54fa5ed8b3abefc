// Package templates renders the site's pages and the HTML fragments
// patched over SSE. Pages are exposed as templ components so handlers
// keep a single Render(ctx, w) contract; fragment helpers return
// strings for datastar element patches.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"nestcrm-web/internal/cart"
	"nestcrm-web/internal/icons"
	"nestcrm-web/internal/models"
	"nestcrm-web/internal/money"
)

//go:embed html/*.gohtml
var htmlFS embed.FS

var funcs = template.FuncMap{
	"inr":      money.FormatINR,
	"group":    money.Group,
	"discount": money.Discount,
	"icon":     icons.NameOrDefault,
}

var site = template.Must(
	template.New("site").Funcs(funcs).ParseFS(htmlFS, "html/*.gohtml"),
)

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := site.ExecuteTemplate(w, name, data); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		return nil
	})
}

// LandingData feeds the landing page sections.
type LandingData struct {
	Plans        []models.PricingPlan
	Features     []models.Feature
	Metrics      []models.MetricCard
	LeadSources  []models.LeadSource
	Pipeline     []models.PipelineStage
	ChartPeriods []string
	WhatsAppURL  string
}

// Landing renders the marketing landing page.
func Landing(data LandingData) templ.Component {
	return page("landing", data)
}

// StoreData feeds the data store page.
type StoreData struct {
	Categories    []models.CategoryOption
	FilterOptions models.FilterOptions
	Datasets      []DatasetCard
	Defaults      models.FilterState
	EmptyCart     CartPanelData
	FAQs          []models.FAQ
	FAQContactURL string
	WhatsAppURL   string
}

// DataStore renders the dataset storefront.
func DataStore(data StoreData) templ.Component {
	return page("datastore", data)
}

// StaticPageData feeds the informational pages.
type StaticPageData struct {
	SupportEmail string
	MailtoURL    string
	WhatsAppURL  string
}

// PrivacyPolicy renders the privacy policy page.
func PrivacyPolicy(data StaticPageData) templ.Component {
	return page("privacy", data)
}

// DeleteData renders the data-deletion request page.
func DeleteData(data StaticPageData) templ.Component {
	return page("delete", data)
}

// Feedback renders the feedback page.
func Feedback(data StaticPageData) templ.Component {
	return page("feedback", data)
}

func renderFragment(name string, data any) (string, error) {
	var buf strings.Builder
	if err := site.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// DatasetCard pairs a catalog entry with its per-card WhatsApp inquiry
// link.
type DatasetCard struct {
	models.Dataset
	InquiryURL string
}

// Cards builds the card view of a dataset list, deriving each inquiry
// link from the dataset title.
func Cards(datasets []models.Dataset, inquiryURL func(title string) string) []DatasetCard {
	cards := make([]DatasetCard, len(datasets))
	for i, d := range datasets {
		cards[i] = DatasetCard{Dataset: d, InquiryURL: inquiryURL(d.Title)}
	}
	return cards
}

// DatasetGrid renders the filtered dataset cards, or the empty state
// when nothing matches.
func DatasetGrid(cards []DatasetCard) (string, error) {
	return renderFragment("dataset-grid", cards)
}

// CartPanelData feeds the cart sidebar fragment.
type CartPanelData struct {
	Items []models.Dataset
	Total int
	Count int
}

// CartPanel renders the cart sidebar contents.
func CartPanel(c cart.Cart) (string, error) {
	return renderFragment("cart-panel", CartPanelData{
		Items: c.Items(),
		Total: c.Total(),
		Count: c.Count(),
	})
}

// CheckoutLink renders the checkout hand-off anchor pointing at the
// pre-filled WhatsApp conversation.
func CheckoutLink(url string) (string, error) {
	return renderFragment("checkout-link", url)
}

// DemoLink renders the demo-request hand-off anchor.
func DemoLink(url string) (string, error) {
	return renderFragment("demo-link", url)
}
