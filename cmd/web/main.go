package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"

	"nestcrm-web/internal/cart"
	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/config"
	"nestcrm-web/internal/contact"
	"nestcrm-web/internal/marketing"
	"nestcrm-web/internal/middleware"
	"nestcrm-web/internal/observability"
	"nestcrm-web/internal/server"
	"nestcrm-web/internal/ui/templates"
)

const (
	renderTimeout      = 10 * time.Second
	catalogLoadTimeout = 30 * time.Second
	cacheMaxAge        = "public, max-age=300"
)

// pages binds the template handlers to the catalog and the contact
// configuration.
type pages struct {
	store   *catalog.Store
	contact config.ContactConfig
}

func (p *pages) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := component.Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func (p *pages) whatsAppURL() string {
	return contact.WhatsAppLink(p.contact.WhatsAppNumber, contact.GeneralInquiry())
}

func (p *pages) handleLanding(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, templates.Landing(templates.LandingData{
		Plans:        marketing.Plans(),
		Features:     marketing.Features(),
		Metrics:      marketing.Metrics(),
		LeadSources:  marketing.LeadSources(),
		Pipeline:     marketing.Pipeline(),
		ChartPeriods: marketing.ChartPeriods,
		WhatsAppURL:  p.whatsAppURL(),
	}))
}

func (p *pages) inquiryURL(title string) string {
	return contact.WhatsAppLink(p.contact.WhatsAppNumber, contact.DatasetInquiry(title))
}

func (p *pages) handleDataStore(w http.ResponseWriter, r *http.Request) {
	empty := cart.New()
	p.render(w, r, templates.DataStore(templates.StoreData{
		Categories:    catalog.Categories(),
		FilterOptions: catalog.FilterOptions(),
		Datasets:      templates.Cards(p.store.Datasets(), p.inquiryURL),
		Defaults:      catalog.DefaultFilterState(),
		EmptyCart: templates.CartPanelData{
			Items: empty.Items(),
			Total: empty.Total(),
			Count: empty.Count(),
		},
		FAQs:          marketing.FAQs(),
		FAQContactURL: contact.WhatsAppLink(p.contact.WhatsAppNumber, contact.FAQInquiry()),
		WhatsAppURL:   p.whatsAppURL(),
	}))
}

func (p *pages) staticPageData(subject, body string) templates.StaticPageData {
	return templates.StaticPageData{
		SupportEmail: p.contact.SupportEmail,
		MailtoURL:    contact.MailtoLink(p.contact.SupportEmail, subject, body),
		WhatsAppURL:  p.whatsAppURL(),
	}
}

func (p *pages) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, templates.PrivacyPolicy(p.staticPageData("Privacy Question", "")))
}

func (p *pages) handleDeleteData(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, templates.DeleteData(p.staticPageData(
		"Data Deletion Request",
		"Please delete all personal data associated with this email address.",
	)))
}

func (p *pages) handleFeedback(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, templates.Feedback(p.staticPageData("Feedback", "")))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	store := catalog.NewStore()
	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()

	if err := store.Load(ctx, cfg.Catalog.BaseFile, cfg.Catalog.LocationFile); err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	p := &pages{store: store, contact: cfg.Contact}

	templateHandlers := &server.TemplateHandlers{
		Landing:    p.handleLanding,
		DataStore:  p.handleDataStore,
		Privacy:    p.handlePrivacy,
		DeleteData: p.handleDeleteData,
		Feedback:   p.handleFeedback,
	}

	srv := server.NewServer(store, cfg.Contact.WhatsAppNumber, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down catalog store")
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
