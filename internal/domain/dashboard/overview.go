package dashboard

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

const recentActivityLimit = 5

type CardChange struct {
	Value  float64       `json:"value"`
	Label  string        `json:"label"`
	Period string        `json:"period"`
	Trend  metrics.Trend `json:"trend"`
}

type MetricCard struct {
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Value  string      `json:"value"`
	Raw    float64     `json:"raw"`
	Icon   string      `json:"icon"`
	Change *CardChange `json:"change,omitempty"`
}

type ActivityItem struct {
	ID         string          `json:"id"`
	Type       hr.ActivityType `json:"type"`
	Icon       string          `json:"icon"`
	Message    string          `json:"message"`
	Time       string          `json:"time"`
	OccurredAt time.Time       `json:"occurredAt"`
	Status     Badge           `json:"status"`
}

type Overview struct {
	AsOf             calendar.Date    `json:"asOf"`
	AttendanceDate   calendar.Date    `json:"attendanceDate"`
	Cards            []MetricCard     `json:"cards"`
	WeeklyAttendance []ChartDay       `json:"weeklyAttendance"`
	PayrollBreakdown PayrollBreakdown `json:"payrollBreakdown"`
	RecentActivity   []ActivityItem   `json:"recentActivity"`
}

type OverviewInput struct {
	Dataset        hr.Dataset
	Now            time.Time
	Today          calendar.Date
	AttendanceDate calendar.Date
	ThresholdDays  int
}

var activityIcons = map[hr.ActivityType]string{
	hr.ActivityAttendance: "clock",
	hr.ActivityPayroll:    "dollar-sign",
	hr.ActivityEmployee:   "user",
}

// BuildOverview assembles the home page. Cards with a stored baseline carry a change figure.
func BuildOverview(in OverviewInput) Overview {
	ds := in.Dataset
	day := onDate(ds.Attendance, in.AttendanceDate)
	totalPayroll := metrics.Sum(ds.Payroll, func(r hr.PayrollRecord) float64 { return r.NetPay })
	avgRating := metrics.Average(ds.Compensation, func(c hr.CompensationRecord) float64 { return c.PerformanceRating })
	enrolled := metrics.Count(ds.Benefits, benefitStatus(hr.BenefitEnrolled))
	reviewsDue := metrics.Count(ds.Compensation, func(c hr.CompensationRecord) bool {
		return metrics.ReviewDue(c.NextReview, in.Today, in.ThresholdDays)
	})
	present := metrics.Count(day, attended)

	cards := []MetricCard{
		{Key: hr.MetricTotalEmployees, Title: "Total Employees", Value: strconv.Itoa(len(ds.Employees)), Raw: float64(len(ds.Employees)), Icon: "users"},
		{Key: hr.MetricPresentToday, Title: "Present Today", Value: strconv.Itoa(present), Raw: float64(present), Icon: "clock"},
		{Key: hr.MetricMonthlyPayroll, Title: "Monthly Payroll", Value: metrics.FormatCompactCurrency(totalPayroll), Raw: totalPayroll, Icon: "dollar-sign"},
		{Key: hr.MetricAvgPerformance, Title: "Avg Performance", Value: metrics.FormatRating(avgRating), Raw: round(avgRating, 1), Icon: "trending-up"},
		{Key: hr.MetricBenefitsEnrolled, Title: "Benefits Enrolled", Value: strconv.Itoa(enrolled), Raw: float64(enrolled), Icon: "heart"},
		{Key: "pending_reviews", Title: "Pending Reviews", Value: strconv.Itoa(reviewsDue), Raw: float64(reviewsDue), Icon: "alert-triangle"},
	}
	for i := range cards {
		baseline, ok := ds.Baseline(cards[i].Key)
		if !ok {
			continue
		}
		change := round(metrics.Change(cards[i].Raw, baseline.Value), 1)
		cards[i].Change = &CardChange{
			Value:  change,
			Label:  metrics.FormatChange(change),
			Period: baseline.Period,
			Trend:  metrics.TrendOf(change),
		}
	}

	return Overview{
		AsOf:             in.Today,
		AttendanceDate:   in.AttendanceDate,
		Cards:            cards,
		WeeklyAttendance: BuildWeeklyChart(ds.Attendance, in.AttendanceDate),
		PayrollBreakdown: BuildPayrollBreakdown(ds.Payroll, ds.Benefits),
		RecentActivity:   RecentActivity(ds.Activities, in.Now, recentActivityLimit),
	}
}

// RecentActivity returns up to limit items, newest first, with times relative to now.
func RecentActivity(activities []hr.Activity, now time.Time, limit int) []ActivityItem {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b hr.Activity) int {
		return cmp.Compare(b.OccurredAt.UnixNano(), a.OccurredAt.UnixNano())
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	items := make([]ActivityItem, 0, len(sorted))
	for _, a := range sorted {
		items = append(items, ActivityItem{
			ID:         a.ID,
			Type:       a.Type,
			Icon:       activityIcons[a.Type],
			Message:    a.Message,
			Time:       humanize.RelTime(a.OccurredAt, now, "ago", "from now"),
			OccurredAt: a.OccurredAt,
			Status:     statusBadge(a.Status),
		})
	}
	return items
}
