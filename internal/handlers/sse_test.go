package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

func createTestSSEHandlers() *SSEHandlers {
	return NewSSEHandlers(createTestAnalytics(), slog.Default())
}

func TestSSEHandlers_HandleDashboard(t *testing.T) {
	handlers := createTestSSEHandlers()

	req := httptest.NewRequest(http.MethodGet, "/sse/dashboard", nil)
	w := httptest.NewRecorder()

	handlers.HandleDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected text/event-stream content type, got %q", ct)
	}

	body := w.Body.String()

	// One render pass patches the table element and all chart signals.
	if !strings.Contains(body, "datastar-patch-elements") {
		t.Error("expected an element patch event in the stream")
	}
	if !strings.Contains(body, "datastar-patch-signals") {
		t.Error("expected a signal patch event in the stream")
	}
	if !strings.Contains(body, `id="table-content"`) {
		t.Error("expected the table-content element in the patch")
	}
	for _, signal := range []string{"kpis", "topProducts", "categorySales", "monthlyTrend",
		"topSalespersons", "topStores", "monthlyPattern", "quarterlySales", "pareto"} {
		if !strings.Contains(body, signal) {
			t.Errorf("expected %q signal in the stream", signal)
		}
	}
}

func TestSSEHandlers_HandleDashboard_Filtered(t *testing.T) {
	handlers := createTestSSEHandlers()

	req := httptest.NewRequest(http.MethodGet, "/sse/dashboard?store_city=Austin", nil)
	w := httptest.NewRecorder()

	handlers.HandleDashboard(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Laptop") {
		t.Error("expected the Austin record in the table patch")
	}
	if strings.Contains(body, "<td>Dallas</td>") {
		t.Error("filtered-out city should not appear in the table patch")
	}
}

func TestSSEHandlers_TableRowLimit(t *testing.T) {
	records := make([]models.SalesRecord, 120)
	for i := range records {
		records[i] = models.SalesRecord{
			TransactionID: "T" + string(rune('A'+i%26)),
			Date:          time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount:   10,
			ProductName:   "Widget",
		}
	}

	src := &stubSource{records: records}
	loader := dataset.NewLoader(src, dataset.NewMemoryCache(time.Hour), slog.Default())
	analytics := services.NewAnalytics(loader, slog.Default())
	handlers := NewSSEHandlers(analytics, slog.Default())

	html, err := handlers.renderSalesTable(records)
	if err != nil {
		t.Fatalf("renderSalesTable() error: %v", err)
	}

	if got := strings.Count(html, "<tr>") - 1; got != maxTableRows {
		t.Errorf("rendered %d data rows, want %d", got, maxTableRows)
	}
	if !strings.Contains(html, "Showing 50 of 120 rows") {
		t.Error("expected the truncation note in the table")
	}
}

func TestSSEHandlers_RenderSalesTable_Empty(t *testing.T) {
	handlers := createTestSSEHandlers()

	html, err := handlers.renderSalesTable(nil)
	if err != nil {
		t.Fatalf("renderSalesTable() error: %v", err)
	}

	if !strings.Contains(html, "Showing 0 of 0 rows") {
		t.Error("expected an empty-table note")
	}
}
