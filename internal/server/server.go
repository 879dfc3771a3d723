package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard page and operational routes. The page is an exact match so
	// unknown paths fall through to the mux's 404/405 handling.
	s.mux.HandleFunc("GET /{$}", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)
	s.mux.HandleFunc("POST /admin/refresh", s.apiHandlers.HandleRefresh)

	// REST API endpoints; all accept the filter query parameters
	s.mux.HandleFunc("GET /api/kpis", s.apiHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /api/top-products", s.apiHandlers.HandleTopProducts)
	s.mux.HandleFunc("GET /api/category-sales", s.apiHandlers.HandleCategorySales)
	s.mux.HandleFunc("GET /api/sales-trend", s.apiHandlers.HandleSalesTrend)
	s.mux.HandleFunc("GET /api/top-salespersons", s.apiHandlers.HandleTopSalespersons)
	s.mux.HandleFunc("GET /api/top-stores", s.apiHandlers.HandleTopStores)
	s.mux.HandleFunc("GET /api/monthly-pattern", s.apiHandlers.HandleMonthlyPattern)
	s.mux.HandleFunc("GET /api/quarterly-sales", s.apiHandlers.HandleQuarterlySales)
	s.mux.HandleFunc("GET /api/pareto", s.apiHandlers.HandlePareto)
	s.mux.HandleFunc("GET /api/filters", s.apiHandlers.HandleFilters)

	// Downloads of the filtered table
	s.mux.HandleFunc("GET /api/export", s.apiHandlers.HandleExportCSV)
	s.mux.HandleFunc("GET /api/export.xlsx", s.apiHandlers.HandleExportXLSX)

	// Unknown API paths get the JSON error envelope instead of plain text.
	s.mux.HandleFunc("GET /api/", s.handleUnknownAPI)

	// Datastar SSE: one recomputation pass per filter change
	s.mux.HandleFunc("GET /sse/dashboard", s.sseHandlers.HandleDashboard)
}

func (s *Server) handleUnknownAPI(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	errors.WriteError(w, s.logger, errors.NotFound("unknown API endpoint"), requestID)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
