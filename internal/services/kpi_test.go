package services

import (
	"math"
	"testing"

	"sales-dashboard/internal/models"
)

func TestSummarize(t *testing.T) {
	records := []models.SalesRecord{
		{Quantity: 1, TotalAmount: 100},
		{Quantity: 3, TotalAmount: 50},
	}

	got := Summarize(records)

	if got.TotalRevenue != 150 {
		t.Errorf("total revenue = %f, want 150", got.TotalRevenue)
	}
	if got.Transactions != 2 {
		t.Errorf("transactions = %d, want 2", got.Transactions)
	}
	if got.AverageTicket != 75 {
		t.Errorf("average ticket = %f, want 75", got.AverageTicket)
	}
	if got.UnitsSold != 4 {
		t.Errorf("units sold = %d, want 4", got.UnitsSold)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)

	if got.TotalRevenue != 0 || got.Transactions != 0 || got.UnitsSold != 0 {
		t.Errorf("empty dataset should report zeros, got %+v", got)
	}
	if got.AverageTicket != 0 || math.IsNaN(got.AverageTicket) {
		t.Errorf("average ticket on empty dataset = %f, want 0", got.AverageTicket)
	}
}

// Every aggregation partitions the same revenue: summing any grouped pipeline
// must reproduce the KPI total.
func TestSummarize_PartitionConsistency(t *testing.T) {
	records := []models.SalesRecord{
		{ProductName: "Laptop", Category: "Electronics", TotalAmount: 999.99},
		{ProductName: "Mouse", Category: "Electronics", TotalAmount: 59.98},
		{ProductName: "Notebook", Category: "Stationery", TotalAmount: 45.00},
		{ProductName: "Laptop", Category: "Electronics", TotalAmount: 499.99},
	}

	want := Summarize(records).TotalRevenue

	var byCategory float64
	for _, row := range CategorySales(records) {
		byCategory += row.Total
	}
	if math.Abs(byCategory-want) > 1e-9 {
		t.Errorf("category totals sum to %f, want %f", byCategory, want)
	}

	var byProduct float64
	for _, row := range ParetoByProduct(records).Rows {
		byProduct += row.Total
	}
	if math.Abs(byProduct-want) > 1e-9 {
		t.Errorf("product totals sum to %f, want %f", byProduct, want)
	}
}
