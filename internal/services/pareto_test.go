package services

import (
	"math"
	"testing"

	"sales-dashboard/internal/models"
)

func TestParetoByProduct(t *testing.T) {
	records := []models.SalesRecord{
		{ProductName: "P1", TotalAmount: 600},
		{ProductName: "P2", TotalAmount: 300},
		{ProductName: "P3", TotalAmount: 100},
	}

	got := ParetoByProduct(records)

	if len(got.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got.Rows))
	}

	wantPercents := []float64{60, 90, 100}
	for i, row := range got.Rows {
		if row.Rank != i+1 {
			t.Errorf("row %d: rank = %d, want %d", i, row.Rank, i+1)
		}
		if math.Abs(row.CumulativePercent-wantPercents[i]) > 1e-9 {
			t.Errorf("row %d: cumulative percent = %f, want %f", i, row.CumulativePercent, wantPercents[i])
		}
	}

	// Only P1 sits at or below the 80% boundary (60 <= 80, 90 > 80).
	if got.CountAt80 != 1 {
		t.Errorf("count at 80%% = %d, want 1", got.CountAt80)
	}
}

func TestParetoByProduct_BoundaryInclusive(t *testing.T) {
	// The second rank lands exactly on 80% and must count as inside.
	records := []models.SalesRecord{
		{ProductName: "P1", TotalAmount: 50},
		{ProductName: "P2", TotalAmount: 30},
		{ProductName: "P3", TotalAmount: 20},
	}

	got := ParetoByProduct(records)

	if got.CountAt80 != 2 {
		t.Errorf("count at 80%% = %d, want 2 (80.0 is inside the boundary)", got.CountAt80)
	}
}

func TestParetoByProduct_Monotonic(t *testing.T) {
	records := []models.SalesRecord{
		{ProductName: "A", TotalAmount: 10},
		{ProductName: "B", TotalAmount: 40},
		{ProductName: "C", TotalAmount: 25},
		{ProductName: "A", TotalAmount: 15},
		{ProductName: "D", TotalAmount: 10},
	}

	got := ParetoByProduct(records)

	var prev float64
	for i, row := range got.Rows {
		if row.CumulativePercent < prev {
			t.Errorf("row %d: cumulative percent decreased from %f to %f", i, prev, row.CumulativePercent)
		}
		prev = row.CumulativePercent
	}

	last := got.Rows[len(got.Rows)-1]
	if math.Abs(last.CumulativePercent-100) > 1e-6 {
		t.Errorf("last cumulative percent = %f, want 100", last.CumulativePercent)
	}
}

func TestParetoByProduct_SingleProduct(t *testing.T) {
	records := []models.SalesRecord{
		{ProductName: "Only", TotalAmount: 42},
	}

	got := ParetoByProduct(records)

	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got.Rows))
	}
	if math.Abs(got.Rows[0].CumulativePercent-100) > 1e-9 {
		t.Errorf("single product percent = %f, want 100", got.Rows[0].CumulativePercent)
	}
	// 100 > 80, so the dominant product is not inside the boundary.
	if got.CountAt80 != 0 {
		t.Errorf("count at 80%% = %d, want 0", got.CountAt80)
	}
}

func TestParetoByProduct_ZeroTotal(t *testing.T) {
	tests := []struct {
		name    string
		records []models.SalesRecord
	}{
		{name: "empty dataset", records: nil},
		{name: "all zero amounts", records: []models.SalesRecord{
			{ProductName: "A", TotalAmount: 0},
			{ProductName: "B", TotalAmount: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParetoByProduct(tt.records)

			if got.Rows == nil {
				t.Error("rows should be an empty slice, not nil")
			}
			if len(got.Rows) != 0 {
				t.Errorf("expected no rows, got %d", len(got.Rows))
			}
			if got.CountAt80 != 0 {
				t.Errorf("count at 80%% = %d, want 0", got.CountAt80)
			}
		})
	}
}
