package output

import (
	"bytes"
	"fmt"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginLeft   = 12.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 12.0
	pdfMarginBottom = 15.0
	pdfRowHeight    = 6.0
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Year", 12, "C"},
	{"Age", 12, "C"},
	{"Phase", 26, "L"},
	{"Start", 30, "R"},
	{"Contribution", 26, "R"},
	{"Payout", 26, "R"},
	{"Interest", 24, "R"},
	{"Balance", 30, "R"},
}

// PDFFormatter renders a printable projection report with one section per scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Retirement Projection", false)

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - pdfMarginLeft - pdfMarginRight

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(contentWidth, 12, "Retirement Projection", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentWidth, 8, "Key Assumptions", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, a := range assumptionLines(report) {
		pdf.MultiCell(contentWidth, 5, "- "+a, "", "L", false)
	}

	for _, sp := range report.Scenarios {
		res := sp.Result
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(contentWidth, 10, sp.Name, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		summary := []string{
			fmt.Sprintf("Age %d to %d, retiring at %d", res.Ages.CurrentAge, res.Ages.EndAge(), res.Ages.HorizonAge),
			fmt.Sprintf("Projected value at retirement: %s", FormatCurrency(res.ValueAtHorizon)),
			fmt.Sprintf("Annual withdrawal: %s (%s)", FormatCurrency(res.AnnualWithdrawal), FormatPercentage(res.Rates.WithdrawalRate)),
			fmt.Sprintf("Peak balance: %s at age %d", FormatCurrency(res.Summary.PeakBalance), res.Summary.PeakAge),
			fmt.Sprintf("Final balance: %s", FormatCurrency(res.Summary.FinalBalance)),
		}
		if res.IsDepleted() {
			summary = append(summary, fmt.Sprintf("Balance runs out at age %d", res.Summary.DepletionAge))
		}
		for _, line := range summary {
			pdf.CellFormat(contentWidth, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)

		drawTableHeader(pdf)
		for i, row := range res.Rows {
			if pdf.GetY()+pdfRowHeight > pageHeight-pdfMarginBottom {
				pdf.AddPage()
				drawTableHeader(pdf)
			}
			drawTableRow(pdf, row, i%2 == 1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(226, 232, 240)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight+1, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func drawTableRow(pdf *fpdf.Fpdf, row domain.ProjectionRow, shaded bool) {
	pdf.SetFont("Arial", "", 8)
	pdf.SetFillColor(245, 247, 250)
	cells := []string{
		intToString(row.Year),
		intToString(row.Age),
		string(row.Phase),
		FormatCurrency(row.StartingTotal),
		FormatCurrency(row.Contribution),
		FormatCurrency(row.Payout),
		FormatCurrency(row.Interest),
		FormatCurrency(row.Balance),
	}
	for i, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight, cells[i], "1", 0, col.align, shaded, 0, "")
	}
	pdf.Ln(-1)
}
