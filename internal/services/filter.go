package services

import (
	"slices"

	"sales-dashboard/internal/models"
)

// FilterRecords returns the subset of records satisfying every active
// predicate. Dimensions combine with logical AND; values within a dimension
// with OR. The date interval is inclusive on both ends and only applies when
// both endpoints are present, so a malformed or partial range simply leaves
// the dataset unfiltered by date. The input is never mutated; output rows
// keep their input order.
func FilterRecords(records []models.SalesRecord, sel models.Selection) []models.SalesRecord {
	cities := toSet(sel.StoreCities)
	products := toSet(sel.Products)
	categories := toSet(sel.Categories)
	salespersons := toSet(sel.Salespersons)

	out := make([]models.SalesRecord, 0, len(records))
	for _, r := range records {
		if len(cities) > 0 && !cities[r.StoreCity] {
			continue
		}
		if len(products) > 0 && !products[r.ProductName] {
			continue
		}
		if len(categories) > 0 && !categories[r.Category] {
			continue
		}
		if len(salespersons) > 0 && !salespersons[r.SalespersonName] {
			continue
		}
		if sel.HasDateRange() {
			if r.Date.Before(*sel.From) || r.Date.After(*sel.To) {
				continue
			}
		}
		out = append(out, r)
	}

	return out
}

// Options lists the distinct values of each filterable dimension, sorted,
// plus the dataset's date bounds. The filter widgets are populated from
// these.
func Options(records []models.SalesRecord) models.FilterOptions {
	opts := models.FilterOptions{
		StoreCities:  distinct(records, func(r models.SalesRecord) string { return r.StoreCity }),
		Products:     distinct(records, func(r models.SalesRecord) string { return r.ProductName }),
		Categories:   distinct(records, func(r models.SalesRecord) string { return r.Category }),
		Salespersons: distinct(records, func(r models.SalesRecord) string { return r.SalespersonName }),
	}

	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		d := r.Date
		if opts.MinDate == nil || d.Before(*opts.MinDate) {
			opts.MinDate = &d
		}
		if opts.MaxDate == nil || d.After(*opts.MaxDate) {
			opts.MaxDate = &d
		}
	}

	return opts
}

func distinct(records []models.SalesRecord, key func(models.SalesRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	slices.Sort(values)
	return values
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
