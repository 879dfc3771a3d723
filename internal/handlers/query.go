package handlers

import (
	"net/http"
	"strings"
	"time"

	"sales-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

// ParseSelection reads the dashboard filters from the request query string:
// repeated store_city, product, category and salesperson values plus a
// from/to date pair. A malformed or partial date range disables the date
// predicate instead of failing the request.
func ParseSelection(r *http.Request) models.Selection {
	q := r.URL.Query()

	sel := models.Selection{
		StoreCities:  cleanValues(q["store_city"]),
		Products:     cleanValues(q["product"]),
		Categories:   cleanValues(q["category"]),
		Salespersons: cleanValues(q["salesperson"]),
	}

	from, okFrom := parseDate(q.Get("from"))
	to, okTo := parseDate(q.Get("to"))
	if okFrom && okTo {
		sel.From = &from
		sel.To = &to
	}

	return sel
}

func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
