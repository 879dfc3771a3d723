// Package templates holds the hand-written page components. The dashboard is
// a single page: filter controls bound to datastar signals, chart containers
// fed by signal patches from /sse/dashboard, and the raw-data table swapped in
// as an element patch.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Dashboard returns the full dashboard page. All interactivity is driven by
// datastar: changing any filter re-issues the SSE request with the current
// filter values as query parameters.
func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardPage)
		return err
	})
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Sales Analysis Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
<style>
:root { --bg: #f6f7fb; --card: #ffffff; --ink: #1f2937; --muted: #6b7280; --accent: #2563eb; }
* { box-sizing: border-box; }
body { margin: 0; font-family: 'Segoe UI', system-ui, sans-serif; background: var(--bg); color: var(--ink); }
header { background: var(--card); padding: 1rem 2rem; border-bottom: 1px solid #e5e7eb; }
header h1 { margin: 0; font-size: 1.4rem; }
main { padding: 1.5rem 2rem; max-width: 1400px; margin: 0 auto; }
section { margin-bottom: 2rem; }
section > h2 { font-size: 1.1rem; color: var(--muted); border-bottom: 1px solid #e5e7eb; padding-bottom: 0.4rem; }
.filters { display: flex; flex-wrap: wrap; gap: 1rem; background: var(--card); padding: 1rem; border-radius: 8px; }
.filters label { display: block; font-size: 0.8rem; color: var(--muted); margin-bottom: 0.25rem; }
.filters select, .filters input { min-width: 160px; padding: 0.4rem; border: 1px solid #d1d5db; border-radius: 6px; }
.kpi-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; }
.kpi-card { background: var(--card); border-radius: 8px; padding: 1rem 1.25rem; box-shadow: 0 1px 2px rgba(0,0,0,0.05); }
.kpi-card .label { font-size: 0.8rem; color: var(--muted); }
.kpi-card .value { font-size: 1.6rem; font-weight: 600; }
.chart-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(420px, 1fr)); gap: 1rem; }
.chart-card { background: var(--card); border-radius: 8px; padding: 1rem; }
.chart-card h3 { margin: 0 0 0.5rem; font-size: 0.95rem; }
.modern-table { width: 100%; border-collapse: collapse; background: var(--card); border-radius: 8px; overflow: hidden; }
.modern-table th { text-align: left; font-size: 0.8rem; color: var(--muted); padding: 0.6rem 0.8rem; background: #f9fafb; }
.modern-table td { padding: 0.5rem 0.8rem; border-top: 1px solid #f3f4f6; font-size: 0.85rem; }
.category-badge { background: #eef2ff; color: var(--accent); padding: 0.1rem 0.5rem; border-radius: 999px; font-size: 0.75rem; }
.table-note { color: var(--muted); font-size: 0.8rem; }
button.export { background: var(--accent); color: #fff; border: none; padding: 0.5rem 1rem; border-radius: 6px; cursor: pointer; }
</style>
</head>
<body data-signals="{storeCity: '', product: '', category: '', salesperson: '', from: '', to: ''}"
      data-on-load="@get('/sse/dashboard')">
<header>
<h1>Sales Analysis Dashboard</h1>
</header>
<main>

<section>
<div class="filters">
<div>
<label for="filter-store-city">Store City</label>
<select id="filter-store-city" data-bind-store-city
        data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
<option value="">All Cities</option>
</select>
</div>
<div>
<label for="filter-product">Product</label>
<select id="filter-product" data-bind-product
        data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
<option value="">All Products</option>
</select>
</div>
<div>
<label for="filter-category">Category</label>
<select id="filter-category" data-bind-category
        data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
<option value="">All Categories</option>
</select>
</div>
<div>
<label for="filter-salesperson">Salesperson</label>
<select id="filter-salesperson" data-bind-salesperson
        data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
<option value="">All Salespersons</option>
</select>
</div>
<div>
<label for="filter-from">From</label>
<input id="filter-from" type="date" data-bind-from
       data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
</div>
<div>
<label for="filter-to">To</label>
<input id="filter-to" type="date" data-bind-to
       data-on-change="@get('/sse/dashboard?store_city=' + $storeCity + '&product=' + $product + '&category=' + $category + '&salesperson=' + $salesperson + '&from=' + $from + '&to=' + $to)">
</div>
</div>
</section>

<section>
<h2>Key Performance Indicators</h2>
<div class="kpi-grid">
<div class="kpi-card"><div class="label">Total Revenue</div><div class="value" data-text="'$' + ($kpis?.total_revenue ?? 0).toLocaleString()"></div></div>
<div class="kpi-card"><div class="label">Transactions</div><div class="value" data-text="($kpis?.transactions ?? 0).toLocaleString()"></div></div>
<div class="kpi-card"><div class="label">Average Ticket</div><div class="value" data-text="'$' + ($kpis?.average_ticket ?? 0).toFixed(2)"></div></div>
<div class="kpi-card"><div class="label">Units Sold</div><div class="value" data-text="($kpis?.units_sold ?? 0).toLocaleString()"></div></div>
</div>
</section>

<section>
<h2>Sales Overview</h2>
<div class="chart-grid">
<div class="chart-card"><h3>Total Sales by Product</h3><canvas id="chart-top-products"></canvas></div>
<div class="chart-card"><h3>Total Sales by Category</h3><canvas id="chart-category-sales"></canvas></div>
</div>
</section>

<section>
<h2>Sales Trend Over Time</h2>
<div class="chart-card"><canvas id="chart-monthly-trend"></canvas></div>
</section>

<section>
<h2>Top Performers</h2>
<div class="chart-grid">
<div class="chart-card"><h3>Top Salespersons</h3><canvas id="chart-top-salespersons"></canvas></div>
<div class="chart-card"><h3>Top Stores</h3><canvas id="chart-top-stores"></canvas></div>
</div>
</section>

<section>
<h2>Seasonality</h2>
<div class="chart-grid">
<div class="chart-card"><h3>Monthly Sales Pattern</h3><canvas id="chart-monthly-pattern"></canvas></div>
<div class="chart-card"><h3>Quarterly Sales</h3><canvas id="chart-quarterly-sales"></canvas></div>
</div>
</section>

<section>
<h2>Pareto Analysis (80/20 Rule)</h2>
<div class="chart-card">
<p class="table-note" data-text="($pareto?.count_at_80 ?? 0) + ' products account for 80% of revenue'"></p>
<canvas id="chart-pareto"></canvas>
</div>
</section>

<section>
<h2>Sales Data Table</h2>
<p>
<a href="/api/export"><button class="export">Export CSV</button></a>
<a href="/api/export.xlsx"><button class="export">Export Excel</button></a>
</p>
<div id="table-content">
<p class="table-note">Loading sales data…</p>
</div>
</section>

</main>
<script>
const charts = {};
function barChart(id, rows, color) {
	const el = document.getElementById(id);
	if (!el || !rows) return;
	if (charts[id]) charts[id].destroy();
	charts[id] = new Chart(el, {
		type: 'bar',
		data: {
			labels: rows.map(r => r.key),
			datasets: [{ data: rows.map(r => r.total), backgroundColor: color }]
		},
		options: { plugins: { legend: { display: false } } }
	});
}
document.addEventListener('datastar-patch-signals', () => {
	// Signals are mirrored into the hidden JSON island below by data-text.
	const raw = document.getElementById('signal-mirror').textContent;
	if (!raw) return;
	const s = JSON.parse(raw);
	barChart('chart-top-products', s.topProducts, '#2563eb');
	barChart('chart-category-sales', s.categorySales, '#7c3aed');
	barChart('chart-top-salespersons', s.topSalespersons, '#059669');
	barChart('chart-top-stores', s.topStores, '#d97706');
	if (s.monthlyPattern) {
		barChart('chart-monthly-pattern',
			s.monthlyPattern.map(r => ({ key: r.month_name, total: r.total })), '#0891b2');
	}
	if (s.quarterlySales) {
		barChart('chart-quarterly-sales',
			s.quarterlySales.map(r => ({ key: r.label, total: r.total })), '#be185d');
	}
	if (s.monthlyTrend) {
		if (charts['chart-monthly-trend']) charts['chart-monthly-trend'].destroy();
		const cities = [...new Set(s.monthlyTrend.map(r => r.store_city))];
		const months = [...new Set(s.monthlyTrend.map(r => r.month))];
		charts['chart-monthly-trend'] = new Chart(document.getElementById('chart-monthly-trend'), {
			type: 'line',
			data: {
				labels: months,
				datasets: cities.map(c => ({
					label: c,
					data: months.map(m => {
						const row = s.monthlyTrend.find(r => r.month === m && r.store_city === c);
						return row ? row.total : 0;
					})
				}))
			}
		});
	}
	if (s.pareto && s.pareto.rows) {
		const rows = s.pareto.rows;
		const el = document.getElementById('chart-pareto');
		if (charts['chart-pareto']) charts['chart-pareto'].destroy();
		charts['chart-pareto'] = new Chart(el, {
			data: {
				labels: rows.map(r => r.product_name),
				datasets: [
					{ type: 'bar', data: rows.map(r => r.total), backgroundColor: '#2563eb', yAxisID: 'y' },
					{ type: 'line', data: rows.map(r => r.cumulative_percent), borderColor: '#dc2626', yAxisID: 'pct' }
				]
			},
			options: { scales: { y: { position: 'left' }, pct: { position: 'right', min: 0, max: 100 } } }
		});
	}
});
</script>
<span id="signal-mirror" data-text="JSON.stringify({topProducts: $topProducts, categorySales: $categorySales, monthlyTrend: $monthlyTrend, topSalespersons: $topSalespersons, topStores: $topStores, monthlyPattern: $monthlyPattern, quarterlySales: $quarterlySales, pareto: $pareto})" hidden></span>
</body>
</html>
`
