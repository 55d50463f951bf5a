package payroll

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

const (
	pageWidth  = 190.0
	labelWidth = 120.0
	lineHeight = 8.0
)

// Amount renders money for the PDF core fonts, which have no peso glyph: "PHP 36,825.00".
func Amount(value float64) string {
	return "PHP " + strings.Replace(metrics.FormatCurrency(value, metrics.Cents), "₱", "", 1)
}

// RenderPayslip writes a single-page A4 payslip for record.
func RenderPayslip(w io.Writer, record hr.PayrollRecord, issued calendar.Date) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+record.ID, true)
	pdf.SetAuthor("HR Dashboard", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pageWidth, 10, "Payslip", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(pageWidth, 6, tr(fmt.Sprintf("Employee: %s (%s)", record.Employee.Name, record.Employee.ID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(pageWidth, 6, tr("Position: "+record.Employee.Position), "", 1, "L", false, 0, "")
	if record.Period != "" {
		pdf.CellFormat(pageWidth, 6, tr("Period: "+record.Period), "", 1, "L", false, 0, "")
	}
	if !issued.IsZero() {
		pdf.CellFormat(pageWidth, 6, "Issued: "+issued.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(pageWidth, 6, "Status: "+metrics.StatusLabel(record.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(pageWidth, lineHeight, title, "B", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(label string, value float64, bold bool) {
		if bold {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(pageWidth-labelWidth, lineHeight, Amount(value), "", 1, "R", false, 0, "")
		if bold {
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	section("Earnings")
	line("Base salary", record.BaseSalary, false)
	line("Overtime", record.Overtime, false)
	line("Bonuses", record.Bonuses, false)
	line("Gross pay", metrics.GrossPay(record.BaseSalary, record.Overtime, record.Bonuses), true)
	pdf.Ln(2)

	section("Deductions")
	for _, d := range record.Deductions.Lines() {
		line(d.Name, d.Amount, false)
	}
	line("Total deductions", metrics.TotalDeductions(record.Deductions), true)
	pdf.Ln(2)

	section("Net pay")
	line("Net pay", record.NetPay, true)
	if rec := metrics.ReconcileNetPay(record); !rec.Reconciled {
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(pageWidth, lineHeight, "Computed net pay "+Amount(rec.Expected)+" differs from recorded amount", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("payroll: render payslip %s: %w", record.ID, err)
	}
	return pdf.Output(w)
}
