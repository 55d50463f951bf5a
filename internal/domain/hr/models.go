package hr

import (
	"time"

	"hrdash/internal/domain/calendar"
)

// EmployeeRef is the denormalized employee identity carried by every record.
type EmployeeRef struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
}

type Employee struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Position   string           `json:"position" yaml:"position"`
	Department string           `json:"department" yaml:"department"`
	Email      string           `json:"email" yaml:"email"`
	Phone      string           `json:"phone" yaml:"phone"`
	Status     EmploymentStatus `json:"status" yaml:"status"`
	StartDate  calendar.Date    `json:"startDate" yaml:"startDate"`
	Salary     float64          `json:"salary" yaml:"salary"`
}

func (e Employee) Ref() EmployeeRef {
	return EmployeeRef{ID: e.ID, Name: e.Name, Position: e.Position}
}

// AttendanceRecord is one employee-day. CheckIn, CheckOut and TotalHours are nil when not recorded.
type AttendanceRecord struct {
	ID         string           `json:"id" yaml:"id"`
	Employee   EmployeeRef      `json:"employee" yaml:"employee"`
	Date       calendar.Date    `json:"date" yaml:"date"`
	CheckIn    *string          `json:"checkIn" yaml:"checkIn"`
	CheckOut   *string          `json:"checkOut" yaml:"checkOut"`
	Status     AttendanceStatus `json:"status" yaml:"status"`
	TotalHours *float64         `json:"totalHours" yaml:"totalHours"`
}

type Deductions struct {
	SSS        float64 `json:"sss" yaml:"sss"`
	PhilHealth float64 `json:"philHealth" yaml:"philHealth"`
	PagIbig    float64 `json:"pagIbig" yaml:"pagIbig"`
	Tax        float64 `json:"tax" yaml:"tax"`
}

// DeductionLine is a named deduction component.
type DeductionLine struct {
	Name   string
	Amount float64
}

// Lines lists the components in payslip order.
func (d Deductions) Lines() []DeductionLine {
	return []DeductionLine{
		{Name: "SSS", Amount: d.SSS},
		{Name: "PhilHealth", Amount: d.PhilHealth},
		{Name: "Pag-IBIG", Amount: d.PagIbig},
		{Name: "Withholding Tax", Amount: d.Tax},
	}
}

type PayrollRecord struct {
	ID         string        `json:"id" yaml:"id"`
	Employee   EmployeeRef   `json:"employee" yaml:"employee"`
	Period     string        `json:"period" yaml:"period"`
	BaseSalary float64       `json:"baseSalary" yaml:"baseSalary"`
	Overtime   float64       `json:"overtime" yaml:"overtime"`
	Bonuses    float64       `json:"bonuses" yaml:"bonuses"`
	Deductions Deductions    `json:"deductions" yaml:"deductions"`
	NetPay     float64       `json:"netPay" yaml:"netPay"`
	Status     PayrollStatus `json:"status" yaml:"status"`
}

type LastIncrease struct {
	Date       calendar.Date `json:"date" yaml:"date"`
	Amount     float64       `json:"amount" yaml:"amount"`
	Percentage float64       `json:"percentage" yaml:"percentage"`
	Reason     string        `json:"reason" yaml:"reason"`
}

type MarketValue struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
}

type CompensationRecord struct {
	ID                string        `json:"id" yaml:"id"`
	Employee          EmployeeRef   `json:"employee" yaml:"employee"`
	CurrentSalary     float64       `json:"currentSalary" yaml:"currentSalary"`
	SalaryGrade       string        `json:"salaryGrade" yaml:"salaryGrade"`
	LastIncrease      LastIncrease  `json:"lastIncrease" yaml:"lastIncrease"`
	NextReview        calendar.Date `json:"nextReview" yaml:"nextReview"`
	PerformanceRating float64       `json:"performanceRating" yaml:"performanceRating"`
	MarketValue       MarketValue   `json:"marketValue" yaml:"marketValue"`
}

// Enrollments records the coverage an employee has opted into. HMO holds the provider name.
type Enrollments struct {
	HMO      *string `json:"hmo" yaml:"hmo"`
	Life     bool    `json:"life" yaml:"life"`
	Dental   bool    `json:"dental" yaml:"dental"`
	Travel   bool    `json:"travel" yaml:"travel"`
	Training bool    `json:"training" yaml:"training"`
}

type BenefitEnrollment struct {
	ID          string        `json:"id" yaml:"id"`
	Employee    EmployeeRef   `json:"employee" yaml:"employee"`
	Enrollments Enrollments   `json:"enrollments" yaml:"enrollments"`
	Dependents  int           `json:"dependents" yaml:"dependents"`
	TotalCost   float64       `json:"totalCost" yaml:"totalCost"`
	Status      BenefitStatus `json:"status" yaml:"status"`
}

type HealthProvider struct {
	ID             string       `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	Type           ProviderType `json:"type" yaml:"type"`
	Coverage       string       `json:"coverage" yaml:"coverage"`
	MonthlyPremium float64      `json:"monthlyPremium" yaml:"monthlyPremium"`
	MaxBenefit     float64      `json:"maxBenefit" yaml:"maxBenefit"`
	Network        string       `json:"network" yaml:"network"`
}

type Activity struct {
	ID         string         `json:"id" yaml:"id"`
	Type       ActivityType   `json:"type" yaml:"type"`
	Message    string         `json:"message" yaml:"message"`
	Status     ActivityStatus `json:"status" yaml:"status"`
	OccurredAt time.Time      `json:"occurredAt" yaml:"occurredAt"`
}

// MetricBaseline is the prior-period value an overview card compares against.
type MetricBaseline struct {
	Metric string  `json:"metric" yaml:"metric"`
	Value  float64 `json:"value" yaml:"value"`
	Period string  `json:"period" yaml:"period"`
}

const (
	MetricTotalEmployees   = "total_employees"
	MetricPresentToday     = "present_today"
	MetricMonthlyPayroll   = "monthly_payroll"
	MetricAvgPerformance   = "avg_performance"
	MetricBenefitsEnrolled = "benefits_enrolled"
)
