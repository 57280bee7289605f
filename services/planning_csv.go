package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PlanningCSVFilename is the download name of the planning export.
const PlanningCSVFilename = "Planning_VR_SHOW_Export.csv"

// ExportPlanningCSV renders the timeline as a semicolon separated CSV suited
// for French spreadsheet locales. The payload starts with a UTF-8 BOM so
// Excel detects the encoding, rows are joined with bare newlines, and a
// TOTAL PROJET row closes the sheet. Dates are the project start date offset
// by each task's start day, formatted dd/mm/yyyy.
func ExportPlanningCSV(tasks []PlanningTask, startDate time.Time, totalDays float64) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString("Ordre;Phase;Metier / Section;Duree (Jours);Debut estimatif;Fin estimative")

	for i, t := range tasks {
		dStart := startDate.AddDate(0, 0, int(t.StartDay))
		dEnd := dStart.AddDate(0, 0, int(t.Duration))

		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			strconv.Itoa(i + 1),
			string(t.Phase),
			t.Name,
			formatDays(t.Duration),
			dStart.Format("02/01/2006"),
			dEnd.Format("02/01/2006"),
		}, ";"))
	}

	b.WriteString("\n;;TOTAL PROJET;")
	b.WriteString(formatDays(totalDays))
	b.WriteString(";;")

	return []byte(b.String())
}

// formatDays renders a day count without a trailing .0 for whole values.
func formatDays(days float64) string {
	if days == float64(int64(days)) {
		return strconv.FormatInt(int64(days), 10)
	}
	return fmt.Sprintf("%g", days)
}
