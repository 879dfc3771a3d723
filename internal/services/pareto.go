package services

import "sales-dashboard/internal/models"

// paretoThreshold is the cumulative-share boundary of the 80/20 view. A rank
// sitting exactly on the boundary counts as inside it.
const paretoThreshold = 80.0

// ParetoByProduct ranks products by descending revenue and computes each
// rank's cumulative revenue and cumulative share of the grand total, plus
// how many leading ranks account for at most 80% of revenue. A zero grand
// total (empty dataset included) yields an empty row set rather than a
// division by zero.
func ParetoByProduct(records []models.SalesRecord) models.ParetoResult {
	ranked := rankDesc(sumBy(records, func(r models.SalesRecord) string { return r.ProductName }), 0)

	var grandTotal float64
	for _, row := range ranked {
		grandTotal += row.Total
	}

	result := models.ParetoResult{Rows: []models.ParetoRow{}}
	if grandTotal == 0 {
		return result
	}

	var cumulative float64
	for i, row := range ranked {
		cumulative += row.Total
		percent := cumulative / grandTotal * 100

		result.Rows = append(result.Rows, models.ParetoRow{
			Rank:              i + 1,
			ProductName:       row.Key,
			Total:             row.Total,
			CumulativeTotal:   cumulative,
			CumulativePercent: percent,
		})

		if percent <= paretoThreshold {
			result.CountAt80++
		}
	}

	return result
}
