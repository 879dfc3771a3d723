package models

import "time"

// SalesRecord is one row of the consolidated sales query: the fact columns
// plus the dimension attributes denormalized via left joins. A missing
// dimension match leaves its fields empty; the fact fields are always set.
type SalesRecord struct {
	TransactionID   string
	Date            time.Time
	Quantity        int
	TotalAmount     float64
	CustomerName    string
	CustomerCity    string
	CustomerState   string
	StoreName       string
	StoreCity       string
	StoreState      string
	ProductName     string
	Brand           string
	Category        string
	SalespersonName string
	Year            int
	Month           int
	Day             int

	// Derived at load time from Date.
	MonthPeriod string
	Quarter     int
}

// Selection holds the active dashboard filters. An empty value slice means
// "no filter on that dimension". The date interval is inclusive on both ends
// and only takes effect when both endpoints are present.
type Selection struct {
	StoreCities  []string
	Products     []string
	Categories   []string
	Salespersons []string
	From         *time.Time
	To           *time.Time
}

func (s Selection) HasDateRange() bool {
	return s.From != nil && s.To != nil
}

// AggregateRow is one group of a sum-by-dimension pipeline.
type AggregateRow struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// MonthlyCityRevenue is one point of the month-by-store-city trend series.
type MonthlyCityRevenue struct {
	MonthPeriod string  `json:"month"`
	StoreCity   string  `json:"store_city"`
	Total       float64 `json:"total"`
}

// MonthPatternRow is one calendar month of the seasonality view, aggregated
// across years.
type MonthPatternRow struct {
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Total     float64 `json:"total"`
}

type QuarterRow struct {
	Quarter int     `json:"quarter"`
	Label   string  `json:"label"`
	Total   float64 `json:"total"`
}

// ParetoRow is one rank of the product Pareto analysis. CumulativePercent is
// non-decreasing in rank and reaches 100 at the last rank.
type ParetoRow struct {
	Rank              int     `json:"rank"`
	ProductName       string  `json:"product_name"`
	Total             float64 `json:"total"`
	CumulativeTotal   float64 `json:"cumulative_total"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

// ParetoResult carries the ranked rows plus how many leading ranks account
// for at most 80% of total revenue.
type ParetoResult struct {
	Rows      []ParetoRow `json:"rows"`
	CountAt80 int         `json:"count_at_80"`
}

// KPISummary holds the headline metrics of the filtered dataset. An empty
// dataset reports zeros, never NaN.
type KPISummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	Transactions  int     `json:"transactions"`
	AverageTicket float64 `json:"average_ticket"`
	UnitsSold     int     `json:"units_sold"`
}

// FilterOptions lists the distinct values available per filterable dimension,
// used to populate the filter widgets.
type FilterOptions struct {
	StoreCities  []string   `json:"store_cities"`
	Products     []string   `json:"products"`
	Categories   []string   `json:"categories"`
	Salespersons []string   `json:"salespersons"`
	MinDate      *time.Time `json:"min_date,omitempty"`
	MaxDate      *time.Time `json:"max_date,omitempty"`
}
