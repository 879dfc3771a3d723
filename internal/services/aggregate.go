package services

import (
	"fmt"
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

// rankedLimit caps the ranked pipelines (top products, salespersons, stores).
const rankedLimit = 10

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// sumBy groups records by key and sums the sale amount per group. Rows come
// out in first-seen key order, which keeps later stable ranking tied to the
// original row order among exact ties. A missing dimension value groups
// under the empty key.
func sumBy(records []models.SalesRecord, key func(models.SalesRecord) string) []models.AggregateRow {
	index := make(map[string]int)
	rows := make([]models.AggregateRow, 0)

	for _, r := range records {
		k := key(r)
		if i, ok := index[k]; ok {
			rows[i].Total += r.TotalAmount
			continue
		}
		index[k] = len(rows)
		rows = append(rows, models.AggregateRow{Key: k, Total: r.TotalAmount})
	}

	return rows
}

// rankDesc sorts descending by total and truncates to limit (0 = no limit).
// The sort is stable; ordering among exact ties is deliberately left at the
// upstream row order.
func rankDesc(rows []models.AggregateRow, limit int) []models.AggregateRow {
	slices.SortStableFunc(rows, func(a, b models.AggregateRow) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TopProducts ranks products by summed revenue, top 10.
func TopProducts(records []models.SalesRecord) []models.AggregateRow {
	return rankDesc(sumBy(records, func(r models.SalesRecord) string { return r.ProductName }), rankedLimit)
}

// TopSalespersons ranks salespersons by summed revenue, top 10.
func TopSalespersons(records []models.SalesRecord) []models.AggregateRow {
	return rankDesc(sumBy(records, func(r models.SalesRecord) string { return r.SalespersonName }), rankedLimit)
}

// TopStores ranks store cities by summed revenue, top 10.
func TopStores(records []models.SalesRecord) []models.AggregateRow {
	return rankDesc(sumBy(records, func(r models.SalesRecord) string { return r.StoreCity }), rankedLimit)
}

// CategorySales sums revenue per category in grouping order, no truncation.
func CategorySales(records []models.SalesRecord) []models.AggregateRow {
	return sumBy(records, func(r models.SalesRecord) string { return r.Category })
}

// MonthlyTrend sums revenue per month-period and store city, in
// chronological month order.
func MonthlyTrend(records []models.SalesRecord) []models.MonthlyCityRevenue {
	type groupKey struct {
		month string
		city  string
	}

	index := make(map[groupKey]int)
	rows := make([]models.MonthlyCityRevenue, 0)

	for _, r := range records {
		k := groupKey{month: r.MonthPeriod, city: r.StoreCity}
		if i, ok := index[k]; ok {
			rows[i].Total += r.TotalAmount
			continue
		}
		index[k] = len(rows)
		rows = append(rows, models.MonthlyCityRevenue{
			MonthPeriod: r.MonthPeriod,
			StoreCity:   r.StoreCity,
			Total:       r.TotalAmount,
		})
	}

	// Month-period labels are "2006-01", so lexicographic order is
	// chronological. Cities within a month stay in grouping order.
	slices.SortStableFunc(rows, func(a, b models.MonthlyCityRevenue) int {
		return strings.Compare(a.MonthPeriod, b.MonthPeriod)
	})

	return rows
}

// MonthlyPattern sums revenue per calendar month across all years, months
// ascending. Useful for spotting seasonality.
func MonthlyPattern(records []models.SalesRecord) []models.MonthPatternRow {
	totals := make(map[int]float64)
	for _, r := range records {
		totals[r.Month] += r.TotalAmount
	}

	months := make([]int, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	slices.Sort(months)

	rows := make([]models.MonthPatternRow, 0, len(months))
	for _, m := range months {
		rows = append(rows, models.MonthPatternRow{
			Month:     m,
			MonthName: monthName(m),
			Total:     totals[m],
		})
	}
	return rows
}

// QuarterlySales sums revenue per quarter, Q1 through Q4 ascending.
func QuarterlySales(records []models.SalesRecord) []models.QuarterRow {
	totals := make(map[int]float64)
	for _, r := range records {
		totals[r.Quarter] += r.TotalAmount
	}

	quarters := make([]int, 0, len(totals))
	for q := range totals {
		quarters = append(quarters, q)
	}
	slices.Sort(quarters)

	rows := make([]models.QuarterRow, 0, len(quarters))
	for _, q := range quarters {
		rows = append(rows, models.QuarterRow{
			Quarter: q,
			Label:   fmt.Sprintf("Q%d", q),
			Total:   totals[q],
		})
	}
	return rows
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}
