package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/export"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// filtered runs the filter pass for a request; on a load failure it writes
// the error response and reports false.
func (h *APIHandlers) filtered(w http.ResponseWriter, r *http.Request) ([]models.SalesRecord, bool) {
	records, err := h.analytics.Filtered(r.Context(), ParseSelection(r))
	if err != nil {
		requestID := observability.GetRequestID(r.Context())
		errors.WriteError(w, h.logger, errors.ServiceUnavailableWrap(err, "sales data unavailable"), requestID)
		return nil, false
	}
	return records, true
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.Summarize(records), cacheHeaders)
}

func (h *APIHandlers) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.TopProducts(records), cacheHeaders)
}

func (h *APIHandlers) HandleCategorySales(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.CategorySales(records), cacheHeaders)
}

func (h *APIHandlers) HandleSalesTrend(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.MonthlyTrend(records), cacheHeaders)
}

func (h *APIHandlers) HandleTopSalespersons(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.TopSalespersons(records), cacheHeaders)
}

func (h *APIHandlers) HandleTopStores(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.TopStores(records), cacheHeaders)
}

func (h *APIHandlers) HandleMonthlyPattern(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.MonthlyPattern(records), cacheHeaders)
}

func (h *APIHandlers) HandleQuarterlySales(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.QuarterlySales(records), cacheHeaders)
}

func (h *APIHandlers) HandlePareto(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, services.ParetoByProduct(records), cacheHeaders)
}

func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.analytics.FilterOptions(r.Context())
	if err != nil {
		requestID := observability.GetRequestID(r.Context())
		errors.WriteError(w, h.logger, errors.ServiceUnavailableWrap(err, "sales data unavailable"), requestID)
		return
	}

	errors.WriteSuccessWithHeaders(w, opts, cacheHeaders)
}

func (h *APIHandlers) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_data_filtered.csv"`)

	if err := export.WriteCSV(w, records); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.Error("csv export failed", "error", err)
	}
}

func (h *APIHandlers) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_data_filtered.xlsx"`)

	if err := export.WriteXLSX(w, records); err != nil {
		h.logger.Error("xlsx export failed", "error", err)
	}
}

// HandleRefresh drops the cached snapshot; the next render reloads from the
// warehouse.
func (h *APIHandlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.analytics.Refresh(r.Context()); err != nil {
		requestID := observability.GetRequestID(r.Context())
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "snapshot refresh failed"), requestID)
		return
	}

	errors.WriteSuccess(w, map[string]string{"status": "refreshed"})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		requestID := observability.GetRequestID(r.Context())
		errors.WriteError(w, h.logger, errors.ServiceUnavailableWrap(err, "sales data unavailable"), requestID)
		return
	}

	errors.WriteSuccess(w, stats)
}
