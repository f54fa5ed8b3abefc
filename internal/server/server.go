package server

import (
	"log/slog"
	"net/http"

	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/handlers"
	"nestcrm-web/internal/ui/assets"
)

type Server struct {
	store       *catalog.Store
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Landing    http.HandlerFunc
	DataStore  http.HandlerFunc
	Privacy    http.HandlerFunc
	DeleteData http.HandlerFunc
	Feedback   http.HandlerFunc
}

func NewServer(store *catalog.Store, whatsAppNumber string, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		store:       store,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(store, logger),
		sseHandlers: handlers.NewSSEHandlers(store, whatsAppNumber, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Page routes
	s.mux.HandleFunc("GET /{$}", templateHandlers.Landing)
	s.mux.HandleFunc("GET /data-store", templateHandlers.DataStore)
	s.mux.HandleFunc("GET /privacy", templateHandlers.Privacy)
	s.mux.HandleFunc("GET /delete-data", templateHandlers.DeleteData)
	s.mux.HandleFunc("GET /feedback", templateHandlers.Feedback)

	s.mux.Handle("GET /static/", assets.Handler("/static/"))

	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/datasets", s.apiHandlers.HandleDatasets)
	s.mux.HandleFunc("GET /api/categories", s.apiHandlers.HandleCategories)
	s.mux.HandleFunc("GET /api/filter-options", s.apiHandlers.HandleFilterOptions)
	s.mux.HandleFunc("GET /api/pricing", s.apiHandlers.HandlePricing)
	s.mux.HandleFunc("GET /api/lead-series", s.apiHandlers.HandleLeadSeries)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/datasets", s.sseHandlers.HandleDatasets)
	s.mux.HandleFunc("GET /sse/cart", s.sseHandlers.HandleCart)
	s.mux.HandleFunc("GET /sse/checkout", s.sseHandlers.HandleCheckout)
	s.mux.HandleFunc("GET /sse/demo", s.sseHandlers.HandleDemo)
	s.mux.HandleFunc("GET /sse/charts", s.sseHandlers.HandleCharts)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
