package services

import "sales-dashboard/internal/models"

// Summarize computes the headline KPIs of the filtered dataset: total
// revenue, transaction count, average ticket, and units sold. An empty
// dataset reports zeros; the average never divides by zero.
func Summarize(records []models.SalesRecord) models.KPISummary {
	var summary models.KPISummary

	for _, r := range records {
		summary.TotalRevenue += r.TotalAmount
		summary.UnitsSold += r.Quantity
	}
	summary.Transactions = len(records)

	if summary.Transactions > 0 {
		summary.AverageTicket = summary.TotalRevenue / float64(summary.Transactions)
	}

	return summary
}
