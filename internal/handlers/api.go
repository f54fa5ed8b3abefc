package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/errors"
	"nestcrm-web/internal/marketing"
	"nestcrm-web/internal/models"
)

const cacheControl = "public, max-age=300"

type APIHandlers struct {
	store  *catalog.Store
	logger *slog.Logger
}

func NewAPIHandlers(store *catalog.Store, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		store:  store,
		logger: logger,
	}
}

// filterStateFromQuery maps query parameters onto a FilterState.
// Malformed price bounds are a client error; everything else defaults
// to the unfiltered view.
func filterStateFromQuery(r *http.Request) (models.FilterState, *errors.AppError) {
	state := catalog.DefaultFilterState()
	q := r.URL.Query()

	if v := q.Get("category"); v != "" {
		state.Category = models.Category(v)
	}
	state.Search = q.Get("q")

	if v := q.Get("price_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return state, errors.BadRequest("price_min must be an integer")
		}
		state.PriceMin = n
	}
	if v := q.Get("price_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return state, errors.BadRequest("price_max must be an integer")
		}
		state.PriceMax = n
	}

	state.Formats = q["format"]
	state.Regions = q["region"]
	for _, age := range q["data_age"] {
		state.DataAges = append(state.DataAges, models.DataAge(age))
	}

	return state, nil
}

func (h *APIHandlers) HandleDatasets(w http.ResponseWriter, r *http.Request) {
	state, appErr := filterStateFromQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, r.Header.Get("X-Request-ID"))
		return
	}

	data := h.store.Filter(state)

	errors.WriteSuccessWithHeaders(w, data, map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, catalog.Categories(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleFilterOptions(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, catalog.FilterOptions(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandlePricing(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, marketing.Plans(), map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleLeadSeries(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	data := marketing.LeadSeries(period)

	errors.WriteSuccessWithHeaders(w, data, map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()

	errors.WriteSuccess(w, stats)
}
