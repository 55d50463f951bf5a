package dashboard

import (
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

type DeductionLine struct {
	Name string `json:"name"`
	Money
}

type PayrollRow struct {
	Person
	RecordID        string                 `json:"recordId"`
	Period          string                 `json:"period"`
	BaseSalary      Money                  `json:"baseSalary"`
	Overtime        Money                  `json:"overtime"`
	Bonuses         Money                  `json:"bonuses"`
	Gross           Money                  `json:"gross"`
	Deductions      []DeductionLine        `json:"deductions"`
	TotalDeductions Money                  `json:"totalDeductions"`
	NetPay          Money                  `json:"netPay"`
	Status          Badge                  `json:"status"`
	Reconciliation  metrics.Reconciliation `json:"reconciliation"`
}

type PayrollSummary struct {
	TotalPayroll    Money           `json:"totalPayroll"`
	Processed       int             `json:"processed"`
	Pending         int             `json:"pending"`
	Reviewed        int             `json:"reviewed"`
	DeductionTotals []DeductionLine `json:"deductionTotals"`
	Reconciled      bool            `json:"reconciled"`
	Records         []PayrollRow    `json:"records"`
}

func payrollStatus(status hr.PayrollStatus) func(hr.PayrollRecord) bool {
	return func(r hr.PayrollRecord) bool { return r.Status == status }
}

// BuildPayrollSummary totals net pay and breaks every record into earnings and deductions.
func BuildPayrollSummary(records []hr.PayrollRecord) PayrollSummary {
	summary := PayrollSummary{
		TotalPayroll: money(metrics.Sum(records, func(r hr.PayrollRecord) float64 { return r.NetPay })),
		Processed:    metrics.Count(records, payrollStatus(hr.PayrollProcessed)),
		Pending:      metrics.Count(records, payrollStatus(hr.PayrollPending)),
		Reviewed:     metrics.Count(records, payrollStatus(hr.PayrollReviewed)),
		Reconciled:   true,
		Records:      make([]PayrollRow, 0, len(records)),
	}

	totals := map[string]float64{}
	var order []string
	for _, r := range records {
		row := PayrollRow{
			Person:          personOf(r.Employee),
			RecordID:        r.ID,
			Period:          r.Period,
			BaseSalary:      money(r.BaseSalary),
			Overtime:        money(r.Overtime),
			Bonuses:         money(r.Bonuses),
			Gross:           money(metrics.GrossPay(r.BaseSalary, r.Overtime, r.Bonuses)),
			TotalDeductions: money(metrics.TotalDeductions(r.Deductions)),
			NetPay:          money(r.NetPay),
			Status:          statusBadge(r.Status),
			Reconciliation:  metrics.ReconcileNetPay(r),
		}
		for _, line := range r.Deductions.Lines() {
			row.Deductions = append(row.Deductions, DeductionLine{Name: line.Name, Money: money(line.Amount)})
			if _, seen := totals[line.Name]; !seen {
				order = append(order, line.Name)
			}
			totals[line.Name] += line.Amount
		}
		if !row.Reconciliation.Reconciled {
			summary.Reconciled = false
		}
		summary.Records = append(summary.Records, row)
	}

	for _, name := range order {
		summary.DeductionTotals = append(summary.DeductionTotals, DeductionLine{Name: name, Money: money(totals[name])})
	}
	return summary
}

type BreakdownSlice struct {
	Money
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

type PayrollBreakdown struct {
	Total  Money            `json:"total"`
	Slices []BreakdownSlice `json:"slices"`
}

// BuildPayrollBreakdown splits the month's spend into base, overtime, bonuses and benefits.
func BuildPayrollBreakdown(payroll []hr.PayrollRecord, benefits []hr.BenefitEnrollment) PayrollBreakdown {
	parts := []struct {
		name  string
		value float64
	}{
		{"Base Salary", metrics.Sum(payroll, func(r hr.PayrollRecord) float64 { return r.BaseSalary })},
		{"Overtime", metrics.Sum(payroll, func(r hr.PayrollRecord) float64 { return r.Overtime })},
		{"Bonuses", metrics.Sum(payroll, func(r hr.PayrollRecord) float64 { return r.Bonuses })},
		{"Benefits", metrics.Sum(benefits, func(b hr.BenefitEnrollment) float64 { return b.TotalCost })},
	}
	total := 0.0
	for _, p := range parts {
		total += p.value
	}
	breakdown := PayrollBreakdown{Total: money(total)}
	for _, p := range parts {
		breakdown.Slices = append(breakdown.Slices, BreakdownSlice{
			Name:  p.name,
			Money: money(p.value),
			Share: round(metrics.Rate(p.value, total), 1),
		})
	}
	return breakdown
}
