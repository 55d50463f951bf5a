package dashboard

import (
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

const (
	coverageEnrolled    = "✓ Enrolled"
	coverageNotEnrolled = "✗ Not enrolled"
	noHMO               = "Not enrolled"
)

type Coverage struct {
	HMO      string `json:"hmo"`
	Life     string `json:"life"`
	Dental   string `json:"dental"`
	Travel   string `json:"travel"`
	Training string `json:"training"`
}

func coverageOf(e hr.Enrollments) Coverage {
	label := func(enrolled bool) string {
		if enrolled {
			return coverageEnrolled
		}
		return coverageNotEnrolled
	}
	hmo := noHMO
	if e.HMO != nil && *e.HMO != "" {
		hmo = *e.HMO
	}
	return Coverage{
		HMO:      hmo,
		Life:     label(e.Life),
		Dental:   label(e.Dental),
		Travel:   label(e.Travel),
		Training: label(e.Training),
	}
}

type BenefitRow struct {
	Person
	RecordID   string   `json:"recordId"`
	Coverage   Coverage `json:"coverage"`
	Dependents int      `json:"dependents"`
	TotalCost  Money    `json:"totalCost"`
	Status     Badge    `json:"status"`
}

type ProviderRow struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           hr.ProviderType `json:"type"`
	Coverage       string          `json:"coverage"`
	Network        string          `json:"network"`
	MonthlyPremium Money           `json:"monthlyPremium"`
	MaxBenefit     Money           `json:"maxBenefit"`
	Enrollees      int             `json:"enrollees"`
}

type BenefitsSummary struct {
	Enrolled       int           `json:"enrolled"`
	Pending        int           `json:"pending"`
	Declined       int           `json:"declined"`
	TotalCost      Money         `json:"totalCost"`
	EnrollmentRate float64       `json:"enrollmentRate"`
	RateLabel      string        `json:"rateLabel"`
	Records        []BenefitRow  `json:"records"`
	Providers      []ProviderRow `json:"providers"`
}

func benefitStatus(status hr.BenefitStatus) func(hr.BenefitEnrollment) bool {
	return func(b hr.BenefitEnrollment) bool { return b.Status == status }
}

// BuildBenefitsSummary reports enrollment counts, cost and rate plus per-provider enrollees.
func BuildBenefitsSummary(enrollments []hr.BenefitEnrollment, providers []hr.HealthProvider) BenefitsSummary {
	enrolled := metrics.Count(enrollments, benefitStatus(hr.BenefitEnrolled))
	rate := metrics.Rate(enrolled, len(enrollments))
	summary := BenefitsSummary{
		Enrolled:       enrolled,
		Pending:        metrics.Count(enrollments, benefitStatus(hr.BenefitPending)),
		Declined:       metrics.Count(enrollments, benefitStatus(hr.BenefitDeclined)),
		TotalCost:      money(metrics.Sum(enrollments, func(b hr.BenefitEnrollment) float64 { return b.TotalCost })),
		EnrollmentRate: round(rate, 0),
		RateLabel:      metrics.FormatPercent(rate, 0),
		Records:        make([]BenefitRow, 0, len(enrollments)),
		Providers:      make([]ProviderRow, 0, len(providers)),
	}
	for _, b := range enrollments {
		summary.Records = append(summary.Records, BenefitRow{
			Person:     personOf(b.Employee),
			RecordID:   b.ID,
			Coverage:   coverageOf(b.Enrollments),
			Dependents: b.Dependents,
			TotalCost:  money(b.TotalCost),
			Status:     statusBadge(b.Status),
		})
	}
	for _, p := range providers {
		summary.Providers = append(summary.Providers, ProviderRow{
			ID:             p.ID,
			Name:           p.Name,
			Type:           p.Type,
			Coverage:       p.Coverage,
			Network:        p.Network,
			MonthlyPremium: money(p.MonthlyPremium),
			MaxBenefit:     money(p.MaxBenefit),
			Enrollees: metrics.Count(enrollments, func(b hr.BenefitEnrollment) bool {
				return b.Enrollments.HMO != nil && *b.Enrollments.HMO == p.Name
			}),
		})
	}
	return summary
}
