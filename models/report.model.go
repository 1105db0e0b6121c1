package models

// MonthlySummary is the sales summary for one calendar month. TotalSaleAmount
// sums the price of every matching transaction, sold or not.
type MonthlySummary struct {
	TotalSaleAmount float64 `json:"totalSaleAmount"`
	SoldCount       int     `json:"soldCount"`
	UnsoldCount     int     `json:"unsoldCount"`
}

// PriceRange is one bucket of the price histogram: [Min, Max). The last bucket
// has Unbounded set and no upper limit.
type PriceRange struct {
	Label     string  `json:"label"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max,omitempty"`
	Unbounded bool    `json:"unbounded,omitempty"`
	Count     int     `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthReport bundles the three reports for a month.
type MonthReport struct {
	Month       string          `json:"month"`
	Summary     MonthlySummary  `json:"summary"`
	PriceRanges []PriceRange    `json:"priceRanges"`
	Categories  []CategoryCount `json:"categories"`
}
