package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/models"
)

func createTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	s := catalog.NewStore()
	err := s.SetData([]models.Dataset{
		{
			ID:          1,
			Title:       "Mumbai Property Hotspots",
			Description: "High-demand localities across the city",
			Price:       2999,
			Format:      "CSV, Excel, JSON",
			Category:    models.CategoryLocationData,
			Region:      "Mumbai",
			DataAge:     models.DataAgeUnderOneMonth,
		},
		{
			ID:          2,
			Title:       "National Market Trends",
			Description: "Quarterly price movement across metros",
			Price:       12999,
			Format:      "Excel, PDF",
			Category:    models.CategoryMarketTrends,
			Region:      "National",
			DataAge:     models.DataAgeOneToThree,
		},
		{
			ID:          101,
			Title:       "Bandra Property Data",
			Description: "Residential listings and pricing",
			Price:       3999,
			Format:      "CSV, Excel",
			Location:    "Bandra",
			Category:    models.CategoryLocationData,
			Region:      "Mumbai",
			DataAge:     models.DataAgeOneToThree,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}
	return response
}

func TestNewAPIHandlers(t *testing.T) {
	store := createTestStore(t)
	handlers := NewAPIHandlers(store, testLogger())

	if handlers == nil {
		t.Fatal("NewAPIHandlers() returned nil")
	}
	if handlers.store != store {
		t.Error("NewAPIHandlers() should set store field")
	}
}

func TestAPIHandlers_HandleDatasets(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/datasets", nil)
	w := httptest.NewRecorder()

	handlers.HandleDatasets(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected content-type 'application/json', got %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("expected cache-control 'public, max-age=300', got %q", cc)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatal("expected data array in response")
	}
	if len(data) != 3 {
		t.Errorf("expected all 3 datasets, got %d", len(data))
	}
}

func TestAPIHandlers_HandleDatasets_Filtered(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"category", "?category=location-data", 2},
		{"search", "?q=bandra", 1},
		{"price range", "?price_min=3000&price_max=13000", 2},
		{"region via location", "?region=Bandra", 1},
		{"format", "?format=PDF", 1},
		{"data age", "?data_age=1-3+months", 2},
		{"no match", "?q=hyderabad", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/datasets"+tt.query, nil)
			w := httptest.NewRecorder()

			handlers.HandleDatasets(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			response := decodeSuccess(t, w)
			data, ok := response["data"].([]interface{})
			if !ok {
				t.Fatal("expected data array in response")
			}
			if len(data) != tt.want {
				t.Errorf("query %q: expected %d datasets, got %d", tt.query, tt.want, len(data))
			}
		})
	}
}

func TestAPIHandlers_HandleDatasets_BadPriceBound(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/datasets?price_min=abc", nil)
	w := httptest.NewRecorder()

	handlers.HandleDatasets(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if success, ok := response["success"].(bool); !ok || success {
		t.Error("expected success=false in error response")
	}
}

func TestAPIHandlers_HandleCategories(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	handlers.HandleCategories(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].([]interface{})
	if !ok || len(data) != 8 {
		t.Errorf("expected 8 category options, got %v", response["data"])
	}
}

func TestAPIHandlers_HandleFilterOptions(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/filter-options", nil)
	w := httptest.NewRecorder()

	handlers.HandleFilterOptions(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected filter options object in response")
	}
	for _, key := range []string{"formats", "regions", "dataAges"} {
		if _, ok := data[key]; !ok {
			t.Errorf("filter options missing %q", key)
		}
	}
}

func TestAPIHandlers_HandlePricing(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/pricing", nil)
	w := httptest.NewRecorder()

	handlers.HandlePricing(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].([]interface{})
	if !ok || len(data) != 3 {
		t.Errorf("expected 3 pricing plans, got %v", response["data"])
	}
}

func TestAPIHandlers_HandleLeadSeries(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	tests := []struct {
		name   string
		query  string
		points int
	}{
		{"month", "?period=month", 4},
		{"quarter", "?period=quarter", 3},
		{"year", "?period=year", 4},
		{"unknown falls back to month", "?period=decade", 4},
		{"missing falls back to month", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/lead-series"+tt.query, nil)
			w := httptest.NewRecorder()

			handlers.HandleLeadSeries(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			response := decodeSuccess(t, w)
			data, ok := response["data"].([]interface{})
			if !ok {
				t.Fatal("expected data array in response")
			}
			if len(data) != tt.points {
				t.Errorf("expected %d chart points, got %d", tt.points, len(data))
			}
		})
	}
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handlers.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Health endpoint should NOT be cached
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("health endpoint should not set cache-control, got %q", cc)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected health data in response")
	}
	if status, ok := data["status"].(string); !ok || status != "healthy" {
		t.Errorf("expected status 'healthy', got %v", data["status"])
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()

	handlers.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	response := decodeSuccess(t, w)
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected stats object in response")
	}
	if count, ok := data["dataset_count"].(float64); !ok || count != 3 {
		t.Errorf("expected dataset_count 3, got %v", data["dataset_count"])
	}
}

func TestAPIHandlers_HeaderConsistency(t *testing.T) {
	handlers := NewAPIHandlers(createTestStore(t), testLogger())

	apiEndpoints := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"datasets", handlers.HandleDatasets},
		{"categories", handlers.HandleCategories},
		{"filter-options", handlers.HandleFilterOptions},
		{"pricing", handlers.HandlePricing},
		{"lead-series", handlers.HandleLeadSeries},
	}

	for _, endpoint := range apiEndpoints {
		t.Run(endpoint.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			endpoint.handler(w, req)

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected content-type 'application/json', got %q", ct)
			}
			if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
				t.Errorf("expected cache-control 'public, max-age=300', got %q", cc)
			}

			decodeSuccess(t, w)
		})
	}
}
