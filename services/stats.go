package services

// SummaryStats aggregates the financials of the current quote. It is always
// derived from the quote lines and never stored on its own.
type SummaryStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalCost     float64 `json:"total_cost"`
	TotalProfit   float64 `json:"total_profit"`
	AverageMargin float64 `json:"average_margin"`
	TotalDays     float64 `json:"total_days"`
}

// ComputeStats sums revenue (sale price × days), internal cost (unit cost ×
// days) and days over the quote, and derives profit and the average margin as
// a percentage of revenue. An empty quote yields all zeros; the margin is 0
// when revenue is 0.
func ComputeStats(lines []QuoteLine) SummaryStats {
	var stats SummaryStats
	for _, l := range lines {
		stats.TotalRevenue += l.SalePrice * l.Days
		stats.TotalCost += l.UnitCost * l.Days
		stats.TotalDays += l.Days
	}
	stats.TotalProfit = stats.TotalRevenue - stats.TotalCost
	if stats.TotalRevenue > 0 {
		stats.AverageMargin = (stats.TotalProfit / stats.TotalRevenue) * 100
	}
	return stats
}

// LineMargin returns the margin percentage of a single quote line, 0 when
// the line's revenue is 0.
func LineMargin(l QuoteLine) float64 {
	revenue := l.SalePrice * l.Days
	if revenue <= 0 {
		return 0
	}
	return ((revenue - l.UnitCost*l.Days) / revenue) * 100
}
