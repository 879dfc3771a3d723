package dataset

import "sales-dashboard/internal/models"

// DeriveDateFields fills the month-period label and quarter number for each
// record from its transaction date, and backfills year/month/day when the
// date dimension row was missing.
func DeriveDateFields(records []models.SalesRecord) {
	for i := range records {
		r := &records[i]
		if r.Date.IsZero() {
			continue
		}

		r.MonthPeriod = r.Date.Format("2006-01")
		r.Quarter = (int(r.Date.Month())-1)/3 + 1

		if r.Year == 0 {
			r.Year = r.Date.Year()
		}
		if r.Month == 0 {
			r.Month = int(r.Date.Month())
		}
		if r.Day == 0 {
			r.Day = r.Date.Day()
		}
	}
}
