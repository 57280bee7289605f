package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF document of the final quote using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for i, l := range data.Lines {
		addQuoteTableRow(m, i+1, l)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the project name, type and start date to the PDF.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Devis - "+data.ProjectName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	// Project type and start date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Type: %s", data.ProjectType), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Début: %s", data.StartDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the quote table.
func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Métier / Section", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Jours", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Coût / J", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Coût total", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Vente / J", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Vente totale", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds a single quote line to the table. Rows alternate
// between white and a light gray background.
func addQuoteTableRow(m core.Maroto, num int, l QuoteLine) {
	var cellStyle *props.Cell
	if num%2 == 0 {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	colNum := col.New(1).Add(text.New(fmt.Sprintf("%d", num), baseText))
	colRole := col.New(3).Add(text.New(l.Role, leftText))
	colDays := col.New(1).Add(text.New(formatQty(l.Days), rightText))
	colCost := col.New(2).Add(text.New(FormatEUR(l.UnitCost), rightText))
	colCostTotal := col.New(2).Add(text.New(FormatEUR(l.UnitCost*l.Days), rightText))
	colSale := col.New(1).Add(text.New(FormatEUR(l.SalePrice), rightText))
	colSaleTotal := col.New(2).Add(text.New(FormatEUR(l.SalePrice*l.Days), rightText))

	if cellStyle != nil {
		colNum = colNum.WithStyle(cellStyle)
		colRole = colRole.WithStyle(cellStyle)
		colDays = colDays.WithStyle(cellStyle)
		colCost = colCost.WithStyle(cellStyle)
		colCostTotal = colCostTotal.WithStyle(cellStyle)
		colSale = colSale.WithStyle(cellStyle)
		colSaleTotal = colSaleTotal.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colNum,
			colRole,
			colDays,
			colCost,
			colCostTotal,
			colSale,
			colSaleTotal,
		),
	)
}

// addQuoteSummary adds the totals and margin section at the bottom of the PDF.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	// Total cost
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Coûts totaux", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatEUR(data.Stats.TotalCost), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	// Total revenue
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("CA total", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatEUR(data.Stats.TotalRevenue), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	// Profit with average margin
	marginLabel := fmt.Sprintf("Profit (marge %.1f%%)", data.Stats.AverageMargin)
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(marginLabel, labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatEUR(data.Stats.TotalProfit), valueStyle),
			).WithStyle(summaryCell),
		),
	)
}

// addQuoteFooter adds the total days line at the bottom.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Durée totale estimée: %s jours", formatQty(data.Stats.TotalDays)),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// formatQty returns a string representation of a day count.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
