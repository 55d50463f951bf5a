package dashboard

import (
	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

const noPunch = "-"

type AttendanceRow struct {
	Person
	RecordID   string   `json:"recordId"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	TotalHours *float64 `json:"totalHours"`
	Hours      string   `json:"hours"`
	Status     Badge    `json:"status"`
}

type AttendanceSummary struct {
	Date       calendar.Date   `json:"date"`
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Late       int             `json:"late"`
	Overtime   int             `json:"overtime"`
	TotalHours float64         `json:"totalHours"`
	HoursLabel string          `json:"hoursLabel"`
	Records    []AttendanceRow `json:"records"`
}

// LatestAttendanceDate is the most recent date that has any record.
func LatestAttendanceDate(records []hr.AttendanceRecord) (calendar.Date, bool) {
	var latest calendar.Date
	for _, r := range records {
		if latest.IsZero() || r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest, !latest.IsZero()
}

func onDate(records []hr.AttendanceRecord, date calendar.Date) []hr.AttendanceRecord {
	var out []hr.AttendanceRecord
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func isStatus(status hr.AttendanceStatus) func(hr.AttendanceRecord) bool {
	return func(r hr.AttendanceRecord) bool { return r.Status == status }
}

func attended(r hr.AttendanceRecord) bool { return r.Status.Attended() }

// BuildAttendanceSummary tallies the records for one day. Late and overtime employees count as present.
func BuildAttendanceSummary(records []hr.AttendanceRecord, date calendar.Date) AttendanceSummary {
	day := onDate(records, date)
	totalHours := metrics.Sum(day, func(r hr.AttendanceRecord) float64 {
		if r.TotalHours == nil {
			return 0
		}
		return *r.TotalHours
	})
	summary := AttendanceSummary{
		Date:       date,
		Present:    metrics.Count(day, attended),
		Absent:     metrics.Count(day, isStatus(hr.AttendanceAbsent)),
		Late:       metrics.Count(day, isStatus(hr.AttendanceLate)),
		Overtime:   metrics.Count(day, isStatus(hr.AttendanceOvertime)),
		TotalHours: totalHours,
		HoursLabel: metrics.FormatHours(&totalHours),
		Records:    make([]AttendanceRow, 0, len(day)),
	}
	for _, r := range day {
		summary.Records = append(summary.Records, AttendanceRow{
			Person:     personOf(r.Employee),
			RecordID:   r.ID,
			CheckIn:    punch(r.CheckIn),
			CheckOut:   punch(r.CheckOut),
			TotalHours: r.TotalHours,
			Hours:      metrics.FormatHours(r.TotalHours),
			Status:     statusBadge(r.Status),
		})
	}
	return summary
}

func punch(value *string) string {
	if value == nil || *value == "" {
		return noPunch
	}
	return *value
}

type ChartDay struct {
	Day     string        `json:"day"`
	Date    calendar.Date `json:"date"`
	Present int           `json:"present"`
	Absent  int           `json:"absent"`
	Late    int           `json:"late"`
}

// BuildWeeklyChart covers the seven days ending at end, oldest first.
func BuildWeeklyChart(records []hr.AttendanceRecord, end calendar.Date) []ChartDay {
	chart := make([]ChartDay, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		date := end.AddDays(offset)
		day := onDate(records, date)
		chart = append(chart, ChartDay{
			Day:     date.Format("Mon"),
			Date:    date,
			Present: metrics.Count(day, attended),
			Absent:  metrics.Count(day, isStatus(hr.AttendanceAbsent)),
			Late:    metrics.Count(day, isStatus(hr.AttendanceLate)),
		})
	}
	return chart
}
