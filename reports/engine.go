// Package reports computes the monthly sales reports over a set of
// transactions. Every function is a pure reduction over its input.
package reports

import (
	"strconv"
	"time"

	"github.com/UmangSachdeva/SalesReport/models"
)

var months = func() map[string]time.Month {
	m := make(map[string]time.Month, 12)
	for month := time.January; month <= time.December; month++ {
		m[month.String()] = month
	}
	return m
}()

// ParseMonth maps an English month name ("January" ... "December") to its
// calendar month. Matching is exact.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}

// priceBounds are the exclusive upper bounds of the bounded buckets. A price
// at or above the last bound falls into the open-ended bucket.
var priceBounds = []float64{100, 200, 300, 400, 500, 600, 700, 800, 900}

// openBucketLabel keeps the label the bar chart has always printed for the
// ">= 900" bucket.
const openBucketLabel = "901"

// inMonth reports whether t was sold in the selected month, in any year.
// Transactions without a sale date never match.
func inMonth(t models.Transaction, month time.Month) bool {
	return t.DateOfSale != nil && t.DateOfSale.Month() == month
}

// Filter returns the transactions sold in the named month. An unknown month
// name matches nothing.
func Filter(transactions []models.Transaction, month string) []models.Transaction {
	m, ok := ParseMonth(month)
	if !ok {
		return nil
	}
	var out []models.Transaction
	for _, t := range transactions {
		if inMonth(t, m) {
			out = append(out, t)
		}
	}
	return out
}

// SummarizeMonth totals price and sold/unsold counts for the named month.
func SummarizeMonth(transactions []models.Transaction, month string) models.MonthlySummary {
	var (
		summary  models.MonthlySummary
		matching int
	)
	for _, t := range Filter(transactions, month) {
		summary.TotalSaleAmount += t.Price
		matching++
		if t.Sold {
			summary.SoldCount++
		}
	}
	summary.UnsoldCount = matching - summary.SoldCount
	return summary
}

// HistogramByPrice counts the named month's transactions per price range.
// All ten ranges are returned in ascending order, including empty ones.
func HistogramByPrice(transactions []models.Transaction, month string) []models.PriceRange {
	ranges := make([]models.PriceRange, 0, len(priceBounds)+1)
	lower := 0.0
	for _, upper := range priceBounds {
		ranges = append(ranges, models.PriceRange{
			Label: strconv.FormatFloat(upper, 'f', -1, 64),
			Min:   lower,
			Max:   upper,
		})
		lower = upper
	}
	ranges = append(ranges, models.PriceRange{
		Label:     openBucketLabel,
		Min:       lower,
		Unbounded: true,
	})

	for _, t := range Filter(transactions, month) {
		ranges[bucketIndex(t.Price)].Count++
	}
	return ranges
}

func bucketIndex(price float64) int {
	for i, upper := range priceBounds {
		if price < upper {
			return i
		}
	}
	return len(priceBounds)
}

// HistogramByCategory counts the named month's transactions per category, in
// order of first appearance. Categories with no transactions are absent.
func HistogramByCategory(transactions []models.Transaction, month string) []models.CategoryCount {
	counts := []models.CategoryCount{}
	index := make(map[string]int)
	for _, t := range Filter(transactions, month) {
		i, seen := index[t.Category]
		if !seen {
			i = len(counts)
			index[t.Category] = i
			counts = append(counts, models.CategoryCount{Category: t.Category})
		}
		counts[i].Count++
	}
	return counts
}

// Build runs all three reports for the named month.
func Build(transactions []models.Transaction, month string) models.MonthReport {
	return models.MonthReport{
		Month:       month,
		Summary:     SummarizeMonth(transactions, month),
		PriceRanges: HistogramByPrice(transactions, month),
		Categories:  HistogramByCategory(transactions, month),
	}
}
