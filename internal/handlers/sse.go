package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"nestcrm-web/internal/cart"
	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/contact"
	"nestcrm-web/internal/marketing"
	"nestcrm-web/internal/models"
	"nestcrm-web/internal/order"
	"nestcrm-web/internal/ui/templates"
)

// storeSignals mirrors the datastar signal model declared on the data
// store page. The cart travels as dataset ids; the server rebuilds the
// priced cart from the catalog on every request.
type storeSignals struct {
	Category string   `json:"category"`
	Search   string   `json:"search"`
	PriceMin int      `json:"priceMin"`
	PriceMax int      `json:"priceMax"`
	Formats  []string `json:"formats"`
	Regions  []string `json:"regions"`
	DataAges []string `json:"dataAges"`
	Cart     []int    `json:"cart"`
}

// chartSignals mirrors the analytics section on the landing page.
type chartSignals struct {
	Period string `json:"period"`
}

// demoSignals mirrors the enterprise demo-request form.
type demoSignals struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type SSEHandlers struct {
	store          *catalog.Store
	whatsAppNumber string
	logger         *slog.Logger
}

func NewSSEHandlers(store *catalog.Store, whatsAppNumber string, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		store:          store,
		whatsAppNumber: whatsAppNumber,
		logger:         logger,
	}
}

func (sig storeSignals) filterState() models.FilterState {
	state := catalog.DefaultFilterState()
	if sig.Category != "" {
		state.Category = models.Category(sig.Category)
	}
	state.Search = sig.Search
	state.PriceMin = sig.PriceMin
	state.PriceMax = sig.PriceMax
	state.Formats = sig.Formats
	state.Regions = sig.Regions
	for _, age := range sig.DataAges {
		state.DataAges = append(state.DataAges, models.DataAge(age))
	}
	return state
}

func defaultStoreSignals() storeSignals {
	return storeSignals{
		PriceMin: catalog.DefaultPriceMin,
		PriceMax: catalog.DefaultPriceMax,
	}
}

func (h *SSEHandlers) inquiryURL(title string) string {
	return contact.WhatsAppLink(h.whatsAppNumber, contact.DatasetInquiry(title))
}

func (h *SSEHandlers) readStoreSignals(r *http.Request) storeSignals {
	signals := defaultStoreSignals()
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.logger.Warn("read store signals", "error", err)
		return defaultStoreSignals()
	}
	return signals
}

// HandleDatasets re-renders the dataset grid for the current filter
// signals.
func (h *SSEHandlers) HandleDatasets(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := h.readStoreSignals(r)
	data := h.store.Filter(signals.filterState())

	html, err := templates.DatasetGrid(templates.Cards(data, h.inquiryURL))
	if err != nil {
		h.logger.Error("render dataset grid", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleCart rebuilds the cart from the id signal, patches the cart
// panel, and writes the normalized ids back so stale or duplicate
// entries disappear from the client.
func (h *SSEHandlers) HandleCart(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := h.readStoreSignals(r)
	c := cart.FromIDs(h.store, signals.Cart)

	html, err := templates.CartPanel(c)
	if err != nil {
		h.logger.Error("render cart panel", "error", err)
		return
	}
	sse.PatchElements(html)

	jsonData, err := json.Marshal(map[string]any{
		"cart": c.IDs(),
	})
	if err != nil {
		h.logger.Error("marshal cart signals", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleCheckout turns the current cart into a WhatsApp hand-off link
// with the order summary pre-filled.
func (h *SSEHandlers) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := h.readStoreSignals(r)
	c := cart.FromIDs(h.store, signals.Cart)
	if c.Count() == 0 {
		sse.PatchElements(`<div id="checkout-link"></div>`)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		return
	}

	url := contact.WhatsAppLink(h.whatsAppNumber, order.Summary(c))
	html, err := templates.CheckoutLink(url)
	if err != nil {
		h.logger.Error("render checkout link", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleDemo turns the enterprise form signals into a WhatsApp link
// carrying the demo request.
func (h *SSEHandlers) HandleDemo(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	var signals demoSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.logger.Warn("read demo signals", "error", err)
	}

	message := contact.DemoRequest(signals.Name, signals.Email, signals.Phone, signals.Company)
	url := contact.WhatsAppLink(h.whatsAppNumber, message)

	html, err := templates.DemoLink(url)
	if err != nil {
		h.logger.Error("render demo link", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleCharts pushes the lead-generation series for the selected
// period into the chart signals.
func (h *SSEHandlers) HandleCharts(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := chartSignals{Period: marketing.PeriodMonth}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.logger.Warn("read chart signals", "error", err)
	}

	data := marketing.LeadSeries(signals.Period)
	jsonData, err := json.Marshal(map[string]any{
		"chartData": data,
	})
	if err != nil {
		h.logger.Error("marshal chart data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
