package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseSelection(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/api/kpis?store_city=Austin&store_city=Dallas&product=Laptop&category=Electronics&salesperson=Alice&from=2023-01-01&to=2023-03-31", nil)

	sel := ParseSelection(req)

	if diff := cmp.Diff([]string{"Austin", "Dallas"}, sel.StoreCities); diff != "" {
		t.Errorf("store cities (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Laptop"}, sel.Products); diff != "" {
		t.Errorf("products (-want +got):\n%s", diff)
	}
	if !sel.HasDateRange() {
		t.Fatal("expected an active date range")
	}
	if !sel.From.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want 2023-01-01", sel.From)
	}
	if !sel.To.Equal(time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want 2023-03-31", sel.To)
	}
}

func TestParseSelection_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/kpis", nil)

	sel := ParseSelection(req)

	if len(sel.StoreCities) != 0 || len(sel.Products) != 0 ||
		len(sel.Categories) != 0 || len(sel.Salespersons) != 0 {
		t.Errorf("expected no dimension filters, got %+v", sel)
	}
	if sel.HasDateRange() {
		t.Error("expected no date range")
	}
}

func TestParseSelection_DateEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantRange bool
	}{
		{name: "both valid", query: "from=2023-01-01&to=2023-02-01", wantRange: true},
		{name: "from only", query: "from=2023-01-01", wantRange: false},
		{name: "to only", query: "to=2023-02-01", wantRange: false},
		{name: "malformed from", query: "from=01/01/2023&to=2023-02-01", wantRange: false},
		{name: "malformed to", query: "from=2023-01-01&to=banana", wantRange: false},
		{name: "whitespace only", query: "from=%20&to=%20", wantRange: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/kpis?"+tt.query, nil)
			sel := ParseSelection(req)
			if sel.HasDateRange() != tt.wantRange {
				t.Errorf("HasDateRange() = %v, want %v", sel.HasDateRange(), tt.wantRange)
			}
		})
	}
}

func TestParseSelection_TrimsAndDropsEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/kpis?product=%20Laptop%20&product=&product=%20", nil)

	sel := ParseSelection(req)

	if diff := cmp.Diff([]string{"Laptop"}, sel.Products); diff != "" {
		t.Errorf("products (-want +got):\n%s", diff)
	}
}
