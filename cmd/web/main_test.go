package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"nestcrm-web/internal/catalog"
	"nestcrm-web/internal/config"
	"nestcrm-web/internal/models"
	"nestcrm-web/internal/server"
)

func newTestStore(t *testing.T) *catalog.Store {
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
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	p := &pages{
		store: newTestStore(t),
		contact: config.ContactConfig{
			WhatsAppNumber: "919322434882",
			SupportEmail:   "admin@nest-crm.com",
		},
	}

	templateHandlers := &server.TemplateHandlers{
		Landing:    p.handleLanding,
		DataStore:  p.handleDataStore,
		Privacy:    p.handlePrivacy,
		DeleteData: p.handleDeleteData,
		Feedback:   p.handleFeedback,
	}

	return server.NewServer(p.store, p.contact.WhatsAppNumber, logger, templateHandlers)
}

// Integration tests for HTTP routes
func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/data-store", http.StatusOK, "text/html"},
		{"/privacy", http.StatusOK, "text/html"},
		{"/delete-data", http.StatusOK, "text/html"},
		{"/feedback", http.StatusOK, "text/html"},
		{"/api/datasets", http.StatusOK, "application/json"},
		{"/api/categories", http.StatusOK, "application/json"},
		{"/api/filter-options", http.StatusOK, "application/json"},
		{"/api/pricing", http.StatusOK, "application/json"},
		{"/api/lead-series", http.StatusOK, "application/json"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

func TestServer_UnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/does-not-exist", nil)

	srv.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestServer_SSERoutes(t *testing.T) {
	srv := newTestServer(t)

	sseRoutes := []string{
		"/sse/datasets",
		"/sse/cart",
		"/sse/checkout",
		"/sse/demo",
		"/sse/charts",
	}

	for _, route := range sseRoutes {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}

			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}

			if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
				t.Errorf("cache-control = %q, want 'no-cache'", cc)
			}
		})
	}
}

func TestServer_JSONResponse(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/datasets", nil)
	srv.ServeHTTP(w, r)

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatal("expected data array in response")
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(data))
	}

	if item, ok := data[0].(map[string]interface{}); ok {
		if title, hasTitle := item["title"].(string); !hasTitle || title == "" {
			t.Error("dataset should have non-empty title field")
		}
		if price, hasPrice := item["price"].(float64); !hasPrice || price <= 0 {
			t.Error("dataset should have positive price field")
		}
		if _, hasCategory := item["category"].(string); !hasCategory {
			t.Error("dataset should have category field")
		}
	} else {
		t.Error("invalid dataset structure")
	}
}

func TestServer_ErrorHandling(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/datasets", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"PATCH", "/sse/cart", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

// Test landing page rendering through its handler
func TestLandingPage(t *testing.T) {
	p := &pages{
		store: newTestStore(t),
		contact: config.ContactConfig{
			WhatsAppNumber: "919322434882",
			SupportEmail:   "admin@nest-crm.com",
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	p.handleLanding(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	expectedComponents := []string{
		"NEST CRM",
		"Lead Management",
		"Pricing",
		"https://wa.me/919322434882",
	}
	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("landing page should contain %q", component)
		}
	}
}

func TestDataStorePage(t *testing.T) {
	p := &pages{
		store: newTestStore(t),
		contact: config.ContactConfig{
			WhatsAppNumber: "919322434882",
			SupportEmail:   "admin@nest-crm.com",
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/data-store", nil)

	p.handleDataStore(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	if cc := w.Header().Get("Cache-Control"); cc != cacheMaxAge {
		t.Errorf("cache-control = %q, want %q", cc, cacheMaxAge)
	}

	body := w.Body.String()
	expectedComponents := []string{
		"Mumbai Property Hotspots",
		"National Market Trends",
		"All Datasets",
		"₹2,999",
		"Frequently Asked Questions",
	}
	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("data store page should contain %q", component)
		}
	}
}
