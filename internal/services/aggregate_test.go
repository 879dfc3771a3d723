package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sales-dashboard/internal/models"
)

func TestSumBy_FirstSeenOrder(t *testing.T) {
	records := []models.SalesRecord{
		{Category: "B", TotalAmount: 10},
		{Category: "A", TotalAmount: 20},
		{Category: "B", TotalAmount: 5},
	}

	got := sumBy(records, func(r models.SalesRecord) string { return r.Category })

	want := []models.AggregateRow{
		{Key: "B", Total: 15},
		{Key: "A", Total: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sumBy (-want +got):\n%s", diff)
	}
}

func TestRankDesc_StableTies(t *testing.T) {
	rows := []models.AggregateRow{
		{Key: "first", Total: 50},
		{Key: "second", Total: 50},
		{Key: "big", Total: 100},
	}

	got := rankDesc(rows, 0)

	// Ties keep their upstream order after the stable sort.
	want := []models.AggregateRow{
		{Key: "big", Total: 100},
		{Key: "first", Total: 50},
		{Key: "second", Total: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rankDesc (-want +got):\n%s", diff)
	}
}

func TestTopProducts_Limit(t *testing.T) {
	records := make([]models.SalesRecord, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, models.SalesRecord{
			ProductName: "Product" + string(rune('A'+i)),
			TotalAmount: float64(15 - i),
		})
	}

	got := TopProducts(records)

	if len(got) != 10 {
		t.Fatalf("expected 10 products, got %d", len(got))
	}
	if got[0].Key != "ProductA" || got[0].Total != 15 {
		t.Errorf("expected ProductA with 15 at rank 1, got %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Total > got[i-1].Total {
			t.Errorf("ranking not descending at index %d: %f > %f", i, got[i].Total, got[i-1].Total)
		}
	}
}

func TestCategorySales_NoTruncation(t *testing.T) {
	records := make([]models.SalesRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, models.SalesRecord{
			Category:    "Cat" + string(rune('A'+i)),
			TotalAmount: 1,
		})
	}

	got := CategorySales(records)
	if len(got) != 12 {
		t.Errorf("category sales should not truncate, got %d of 12", len(got))
	}
}

func TestMonthlyTrend(t *testing.T) {
	records := []models.SalesRecord{
		{MonthPeriod: "2023-02", StoreCity: "Austin", TotalAmount: 30},
		{MonthPeriod: "2023-01", StoreCity: "Dallas", TotalAmount: 20},
		{MonthPeriod: "2023-01", StoreCity: "Austin", TotalAmount: 10},
		{MonthPeriod: "2023-01", StoreCity: "Austin", TotalAmount: 5},
	}

	got := MonthlyTrend(records)

	want := []models.MonthlyCityRevenue{
		{MonthPeriod: "2023-01", StoreCity: "Dallas", Total: 20},
		{MonthPeriod: "2023-01", StoreCity: "Austin", Total: 15},
		{MonthPeriod: "2023-02", StoreCity: "Austin", Total: 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("monthly trend (-want +got):\n%s", diff)
	}
}

func TestMonthlyPattern(t *testing.T) {
	// Same calendar month across two years aggregates into one row.
	records := []models.SalesRecord{
		{Month: 3, TotalAmount: 10},
		{Month: 1, TotalAmount: 20},
		{Month: 3, TotalAmount: 5},
	}

	got := MonthlyPattern(records)

	want := []models.MonthPatternRow{
		{Month: 1, MonthName: "Jan", Total: 20},
		{Month: 3, MonthName: "Mar", Total: 15},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("monthly pattern (-want +got):\n%s", diff)
	}
}

func TestQuarterlySales(t *testing.T) {
	records := []models.SalesRecord{
		{Quarter: 4, TotalAmount: 40},
		{Quarter: 1, TotalAmount: 10},
		{Quarter: 1, TotalAmount: 5},
	}

	got := QuarterlySales(records)

	want := []models.QuarterRow{
		{Quarter: 1, Label: "Q1", Total: 15},
		{Quarter: 4, Label: "Q4", Total: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("quarterly sales (-want +got):\n%s", diff)
	}
}

func TestAggregations_EmptyInput(t *testing.T) {
	if got := TopProducts(nil); len(got) != 0 {
		t.Errorf("TopProducts(nil) should be empty, got %v", got)
	}
	if got := CategorySales(nil); len(got) != 0 {
		t.Errorf("CategorySales(nil) should be empty, got %v", got)
	}
	if got := MonthlyTrend(nil); len(got) != 0 {
		t.Errorf("MonthlyTrend(nil) should be empty, got %v", got)
	}
	if got := MonthlyPattern(nil); len(got) != 0 {
		t.Errorf("MonthlyPattern(nil) should be empty, got %v", got)
	}
	if got := QuarterlySales(nil); len(got) != 0 {
		t.Errorf("QuarterlySales(nil) should be empty, got %v", got)
	}
}

func TestMonthName_OutOfRange(t *testing.T) {
	if got := monthName(0); got != "" {
		t.Errorf("monthName(0) = %q, want empty", got)
	}
	if got := monthName(13); got != "" {
		t.Errorf("monthName(13) = %q, want empty", got)
	}
	if got := monthName(12); got != "Dec" {
		t.Errorf("monthName(12) = %q, want Dec", got)
	}
}

func BenchmarkTopProducts(b *testing.B) {
	records := make([]models.SalesRecord, 10000)
	for i := range records {
		records[i] = models.SalesRecord{
			Date:        time.Date(2023, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC),
			ProductName: "Product" + string(rune('A'+i%50)),
			TotalAmount: float64(i % 997),
		}
	}

	b.ResetTimer()
	for b.Loop() {
		_ = TopProducts(records)
	}
}
