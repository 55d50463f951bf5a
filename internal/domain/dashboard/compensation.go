package dashboard

import (
	"cmp"
	"math"
	"slices"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

type Increase struct {
	Date       calendar.Date `json:"date"`
	Amount     Money         `json:"amount"`
	Percentage float64       `json:"percentage"`
	Reason     string        `json:"reason"`
}

type MarketBand struct {
	Min    Money `json:"min"`
	Max    Money `json:"max"`
	Median Money `json:"median"`
}

type CompensationRow struct {
	Person
	RecordID          string        `json:"recordId"`
	SalaryGrade       string        `json:"salaryGrade"`
	CurrentSalary     Money         `json:"currentSalary"`
	LastIncrease      Increase      `json:"lastIncrease"`
	NextReview        calendar.Date `json:"nextReview"`
	DaysUntilReview   int           `json:"daysUntilReview"`
	ReviewDue         bool          `json:"reviewDue"`
	ReviewOverdue     bool          `json:"reviewOverdue"`
	PerformanceRating float64       `json:"performanceRating"`
	Performance       Badge         `json:"performance"`
	Market            MarketBand    `json:"market"`
	MarketPosition    float64       `json:"marketPosition"`
	CompaRatio        float64       `json:"compaRatio"`
}

type CompensationSummary struct {
	AsOf               calendar.Date     `json:"asOf"`
	ThresholdDays      int               `json:"thresholdDays"`
	TotalCompensation  Money             `json:"totalCompensation"`
	AnnualCompensation Money             `json:"annualCompensation"`
	AverageSalary      Money             `json:"averageSalary"`
	ReviewsDue         int               `json:"reviewsDue"`
	HighPerformers     int               `json:"highPerformers"`
	Records            []CompensationRow `json:"records"`
}

func compensationRow(c hr.CompensationRecord, today calendar.Date, thresholdDays int) CompensationRow {
	mv := c.MarketValue
	return CompensationRow{
		Person:        personOf(c.Employee),
		RecordID:      c.ID,
		SalaryGrade:   c.SalaryGrade,
		CurrentSalary: money(c.CurrentSalary),
		LastIncrease: Increase{
			Date:       c.LastIncrease.Date,
			Amount:     money(c.LastIncrease.Amount),
			Percentage: c.LastIncrease.Percentage,
			Reason:     c.LastIncrease.Reason,
		},
		NextReview:        c.NextReview,
		DaysUntilReview:   today.DaysUntil(c.NextReview),
		ReviewDue:         metrics.ReviewDue(c.NextReview, today, thresholdDays),
		ReviewOverdue:     metrics.ReviewOverdue(c.NextReview, today),
		PerformanceRating: c.PerformanceRating,
		Performance: Badge{
			Label: metrics.FormatRating(c.PerformanceRating),
			Tier:  metrics.PerformanceTier(c.PerformanceRating),
		},
		Market:         MarketBand{Min: money(mv.Min), Max: money(mv.Max), Median: money(mv.Median)},
		MarketPosition: math.Round(metrics.MarketPosition(c.CurrentSalary, mv.Min, mv.Max)),
		CompaRatio:     round(metrics.CompaRatio(c.CurrentSalary, mv.Median), 2),
	}
}

// BuildCompensationSummary evaluates review dates against today using thresholdDays.
func BuildCompensationSummary(records []hr.CompensationRecord, today calendar.Date, thresholdDays int) CompensationSummary {
	salary := func(c hr.CompensationRecord) float64 { return c.CurrentSalary }
	total := metrics.Sum(records, salary)
	summary := CompensationSummary{
		AsOf:               today,
		ThresholdDays:      thresholdDays,
		TotalCompensation:  money(total),
		AnnualCompensation: money(total * 12),
		AverageSalary:      money(round(metrics.Average(records, salary), 0)),
		ReviewsDue: metrics.Count(records, func(c hr.CompensationRecord) bool {
			return metrics.ReviewDue(c.NextReview, today, thresholdDays)
		}),
		HighPerformers: metrics.Count(records, func(c hr.CompensationRecord) bool {
			return c.PerformanceRating >= metrics.HighPerformerRating
		}),
		Records: make([]CompensationRow, 0, len(records)),
	}
	for _, c := range records {
		summary.Records = append(summary.Records, compensationRow(c, today, thresholdDays))
	}
	return summary
}

// DueReviews lists the records whose review falls due, most overdue first.
func DueReviews(records []hr.CompensationRecord, today calendar.Date, thresholdDays int) []CompensationRow {
	var due []CompensationRow
	for _, c := range records {
		if metrics.ReviewDue(c.NextReview, today, thresholdDays) {
			due = append(due, compensationRow(c, today, thresholdDays))
		}
	}
	slices.SortStableFunc(due, func(a, b CompensationRow) int {
		return cmp.Compare(a.DaysUntilReview, b.DaysUntilReview)
	})
	return due
}
