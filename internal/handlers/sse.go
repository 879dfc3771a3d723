package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

const maxTableRows = 50

var salesTableTemplate = template.Must(template.New("salesTable").Parse(`
<div id="table-content">
<table class="modern-table">
<thead><tr><th>Date</th><th>Product</th><th>Category</th><th>Store City</th><th>Salesperson</th><th>Qty</th><th>Amount</th></tr></thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Date.Format "2006-01-02"}}</td>
<td>{{.ProductName}}</td>
<td><span class="category-badge">{{.Category}}</span></td>
<td>{{.StoreCity}}</td>
<td>{{.SalespersonName}}</td>
<td>{{.Quantity}}</td>
<td><strong>{{printf "%.2f" .TotalAmount}}</strong></td>
</tr>{{end}}
</tbody>
</table>
<p class="table-note">Showing {{len .Rows}} of {{.Total}} rows</p>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

type salesTableData struct {
	Rows  []models.SalesRecord
	Total int
}

func (h *SSEHandlers) renderSalesTable(rows []models.SalesRecord) (string, error) {
	total := len(rows)
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
	}

	var buf strings.Builder
	err := salesTableTemplate.Execute(&buf, salesTableData{Rows: rows, Total: total})
	return buf.String(), err
}

// HandleDashboard runs one full recomputation pass for the filters in the
// request and pushes the results to the page: the raw-data table as an
// element patch, every chart dataset as signals. Each filter change issues a
// fresh request, superseding the previous render.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	view, err := h.analytics.View(r.Context(), ParseSelection(r))
	if err != nil {
		h.logger.Error("dashboard render pass failed", "error", err)
		return
	}

	html, err := h.renderSalesTable(view.Rows)
	if err != nil {
		h.logger.Error("render sales table", "error", err)
		return
	}
	sse.PatchElements(html)

	signals, err := json.Marshal(map[string]any{
		"kpis":            view.KPIs,
		"topProducts":     view.TopProducts,
		"categorySales":   view.CategorySales,
		"monthlyTrend":    view.MonthlyTrend,
		"topSalespersons": view.TopSalespersons,
		"topStores":       view.TopStores,
		"monthlyPattern":  view.MonthlyPattern,
		"quarterlySales":  view.QuarterlySales,
		"pareto":          view.Pareto,
	})
	if err != nil {
		h.logger.Error("marshal dashboard signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
