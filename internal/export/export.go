// Package export renders a driver's income records as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/drivahub/drivahub/internal/domain"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"

	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Summary struct {
	Period domain.Period
	Stats  domain.DashboardStats
}

type Report struct {
	Profile     domain.Profile
	GeneratedAt time.Time
	Summaries   []Summary
	Statements  []domain.Statement
	Loads       []domain.Load
}

// BuildPDF renders the report on A4 pages.
func BuildPDF(r Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Driver Income Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if r.Profile.DriverName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Driver: %s", r.Profile.DriverName))
		pdf.Ln(5)
	}
	if r.Profile.CompanyName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Company: %s", r.Profile.CompanyName))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	header(pdf, []float64{25, 30, 30, 25, 30, 30}, "Period", "Earnings", "Net income", "RPM", "Miles", "Deadhead")
	pdf.SetFont("Arial", "", 10)
	for _, s := range r.Summaries {
		pdf.CellFormat(25, 6, string(s.Period), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money(s.Stats.TotalEarnings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(s.Stats.NetIncome), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", s.Stats.RPM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", s.Stats.TotalMiles), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", s.Stats.DeadheadMiles), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Statements")
	pdf.Ln(7)
	header(pdf, []float64{30, 30, 30, 30, 30}, "Date", "Type", "Amount", "Miles", "Deadhead")
	pdf.SetFont("Arial", "", 10)
	for _, s := range r.Statements {
		pdf.CellFormat(30, 6, s.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, string(s.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, money(s.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", s.Miles), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", deref(s.DeadheadMiles)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Loads")
	pdf.Ln(7)
	header(pdf, []float64{25, 50, 50, 30, 25}, "Date", "Pickup", "Dropoff", "Amount", "Miles")
	pdf.SetFont("Arial", "", 10)
	for _, l := range r.Loads {
		pdf.CellFormat(25, 6, l.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, l.Pickup, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, l.Dropoff, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money(l.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f", l.Miles), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildXLSX renders the report as a workbook with summary, statements and loads sheets.
func BuildXLSX(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	statementsSheet := "statements"
	loadsSheet := "loads"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(statementsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(loadsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Driver Income Report")
	_ = f.SetCellValue(summarySheet, "A2", "Driver")
	_ = f.SetCellValue(summarySheet, "B2", r.Profile.DriverName)
	_ = f.SetCellValue(summarySheet, "A3", "Company")
	_ = f.SetCellValue(summarySheet, "B3", r.Profile.CompanyName)
	_ = f.SetCellValue(summarySheet, "A4", "Generated")
	_ = f.SetCellValue(summarySheet, "B4", r.GeneratedAt.Format(time.RFC3339))

	row(f, summarySheet, 6, "Period", "Earnings", "Net income", "RPM", "RPM change", "Miles", "Deadhead")
	for i, s := range r.Summaries {
		row(f, summarySheet, i+7, string(s.Period), s.Stats.TotalEarnings, s.Stats.NetIncome,
			s.Stats.RPM, s.Stats.RPMChange, s.Stats.TotalMiles, s.Stats.DeadheadMiles)
	}

	row(f, statementsSheet, 1, "ID", "Date", "Type", "Amount", "Miles", "Deadhead")
	for i, s := range r.Statements {
		row(f, statementsSheet, i+2, s.ID, s.Date, string(s.Type), s.Amount, s.Miles, deref(s.DeadheadMiles))
	}

	row(f, loadsSheet, 1, "ID", "Date", "Pickup", "Dropoff", "Amount", "Miles")
	for i, l := range r.Loads {
		row(f, loadsSheet, i+2, l.ID, l.Date, l.Pickup, l.Dropoff, l.Amount, l.Miles)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func header(pdf *gofpdf.Fpdf, widths []float64, titles ...string) {
	for i, title := range titles {
		pdf.CellFormat(widths[i], 6, title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

func row(f *excelize.File, sheet string, n int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, n)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
