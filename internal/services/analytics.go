package services

import (
	"context"
	"log/slog"
	"time"

	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/models"
)

// Analytics binds the snapshot loader to the dashboard computations. Every
// interaction runs one full recomputation pass: filter the cached snapshot,
// then aggregate. Nothing persists between passes.
type Analytics struct {
	loader *dataset.Loader
	logger *slog.Logger
}

func NewAnalytics(loader *dataset.Loader, logger *slog.Logger) *Analytics {
	return &Analytics{
		loader: loader,
		logger: logger,
	}
}

// DashboardView is the output of one render pass: everything the dashboard
// widgets need, computed from the same filtered dataset.
type DashboardView struct {
	KPIs            models.KPISummary           `json:"kpis"`
	TopProducts     []models.AggregateRow       `json:"top_products"`
	CategorySales   []models.AggregateRow       `json:"category_sales"`
	MonthlyTrend    []models.MonthlyCityRevenue `json:"monthly_trend"`
	TopSalespersons []models.AggregateRow       `json:"top_salespersons"`
	TopStores       []models.AggregateRow       `json:"top_stores"`
	MonthlyPattern  []models.MonthPatternRow    `json:"monthly_pattern"`
	QuarterlySales  []models.QuarterRow         `json:"quarterly_sales"`
	Pareto          models.ParetoResult         `json:"pareto"`

	// Rows is the filtered dataset backing the raw-data table and export.
	Rows []models.SalesRecord `json:"-"`
}

func (a *Analytics) Snapshot(ctx context.Context) ([]models.SalesRecord, error) {
	return a.loader.Snapshot(ctx)
}

// Filtered returns the snapshot narrowed to the given selection.
func (a *Analytics) Filtered(ctx context.Context, sel models.Selection) ([]models.SalesRecord, error) {
	records, err := a.loader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRecords(records, sel), nil
}

// View runs the full recomputation pass for one filter selection.
func (a *Analytics) View(ctx context.Context, sel models.Selection) (*DashboardView, error) {
	start := time.Now()

	filtered, err := a.Filtered(ctx, sel)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		KPIs:            Summarize(filtered),
		TopProducts:     TopProducts(filtered),
		CategorySales:   CategorySales(filtered),
		MonthlyTrend:    MonthlyTrend(filtered),
		TopSalespersons: TopSalespersons(filtered),
		TopStores:       TopStores(filtered),
		MonthlyPattern:  MonthlyPattern(filtered),
		QuarterlySales:  QuarterlySales(filtered),
		Pareto:          ParetoByProduct(filtered),
		Rows:            filtered,
	}

	a.logger.Debug("render pass completed",
		"rows", len(filtered),
		"duration", time.Since(start),
	)

	return view, nil
}

// FilterOptions lists the selectable values for the filter widgets, computed
// from the unfiltered snapshot.
func (a *Analytics) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	records, err := a.loader.Snapshot(ctx)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return Options(records), nil
}

// Refresh drops the cached snapshot so the next render reloads from the
// warehouse.
func (a *Analytics) Refresh(ctx context.Context) error {
	return a.loader.Invalidate(ctx)
}

// Stats reports dataset shape for the admin endpoint.
func (a *Analytics) Stats(ctx context.Context) (map[string]any, error) {
	records, err := a.loader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	opts := Options(records)
	return map[string]any{
		"record_count": len(records),
		"store_cities": len(opts.StoreCities),
		"products":     len(opts.Products),
		"categories":   len(opts.Categories),
		"salespersons": len(opts.Salespersons),
	}, nil
}
