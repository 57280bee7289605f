package services

// QuoteExportData holds everything the Excel and PDF renderers need to lay
// out a client quote. Build it with BuildQuoteExport so both formats agree.
type QuoteExportData struct {
	ProjectName string
	ProjectType string
	StartDate   string
	Lines       []QuoteLine
	Stats       SummaryStats
}

// BuildQuoteExport assembles the export payload for a project's final quote.
func BuildQuoteExport(projectName, projectType, startDate string, lines []QuoteLine) QuoteExportData {
	return QuoteExportData{
		ProjectName: projectName,
		ProjectType: projectType,
		StartDate:   startDate,
		Lines:       lines,
		Stats:       ComputeStats(lines),
	}
}
