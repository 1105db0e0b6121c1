package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/UmangSachdeva/SalesReport/helpers"
	"github.com/UmangSachdeva/SalesReport/models"
	"github.com/UmangSachdeva/SalesReport/reports"
)

const (
	barChartHeading = "<h2>Price range and the number of items in that range for the selected month</h2>"
	pieChartHeading = "<h2>Unique categories and number of items from that category for the selected month</h2>"
)

// loadReportData returns the transactions for the report routes together
// with the month keyword. ok is false once an error response was written.
func (h *Handler) loadReportData(w http.ResponseWriter, r *http.Request) (transactions []models.Transaction, month string, ok bool) {
	month = r.URL.Query().Get("keyword")

	transactions, err := h.Reports.FindAll(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("month", month).Msg("Error loading transactions for report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, month, false
	}
	if _, known := reports.ParseMonth(month); !known {
		hlog.FromRequest(r).Debug().Str("month", month).Msg("Unrecognized month keyword")
	}
	return transactions, month, true
}

// SalesMonth answers with the month's total sale amount and sold/unsold counts.
func (h *Handler) SalesMonth(w http.ResponseWriter, r *http.Request) {
	transactions, month, ok := h.loadReportData(w, r)
	if !ok {
		return
	}

	summary := reports.SummarizeMonth(transactions, month)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w,
		"The Total Sale in this month: %s, The Total Number of Sales in this month: %d, Total number of not sold items of selected month: %d",
		helpers.FormatAmount(summary.TotalSaleAmount), summary.SoldCount, summary.UnsoldCount)
}

// BarChart renders the month's price-range histogram as an HTML fragment.
func (h *Handler) BarChart(w http.ResponseWriter, r *http.Request) {
	transactions, month, ok := h.loadReportData(w, r)
	if !ok {
		return
	}

	var b strings.Builder
	b.WriteString(barChartHeading)
	for _, pr := range reports.HistogramByPrice(transactions, month) {
		fmt.Fprintf(&b, "< %s = %d<br/>", pr.Label, pr.Count)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// PieChart renders the month's per-category counts as an HTML fragment, one
// "{category} category: {count}<br/>" line per category. Category names are
// HTML-escaped, so "men's clothing" is written as "men&#39;s clothing"; the
// rendered text is unchanged.
func (h *Handler) PieChart(w http.ResponseWriter, r *http.Request) {
	transactions, month, ok := h.loadReportData(w, r)
	if !ok {
		return
	}

	var b strings.Builder
	b.WriteString(pieChartHeading)
	for _, c := range reports.HistogramByCategory(transactions, month) {
		fmt.Fprintf(&b, "%s category: %d<br/>", html.EscapeString(c.Category), c.Count)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// MonthReport returns all three reports for the month as JSON.
func (h *Handler) MonthReport(w http.ResponseWriter, r *http.Request) {
	transactions, month, ok := h.loadReportData(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, reports.Build(transactions, month))
}
