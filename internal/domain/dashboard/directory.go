package dashboard

import (
	"strings"

	"hrdash/internal/domain/calendar"
	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

type DirectoryFilter struct {
	Status hr.EmploymentStatus
	Query  string
}

func (f DirectoryFilter) matches(e hr.Employee) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{e.Name, e.Position, e.Department, e.Email} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

type EmployeeRow struct {
	Person
	Department string        `json:"department"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	StartDate  calendar.Date `json:"startDate"`
	Salary     Money         `json:"salary"`
	Status     Badge         `json:"status"`
}

type EmployeeDirectory struct {
	Total     int           `json:"total"`
	Active    int           `json:"active"`
	OnLeave   int           `json:"onLeave"`
	Inactive  int           `json:"inactive"`
	Employees []EmployeeRow `json:"employees"`
}

// BuildEmployeeDirectory counts over every employee and lists only those matching filter.
func BuildEmployeeDirectory(employees []hr.Employee, filter DirectoryFilter) EmployeeDirectory {
	byStatus := func(status hr.EmploymentStatus) func(hr.Employee) bool {
		return func(e hr.Employee) bool { return e.Status == status }
	}
	dir := EmployeeDirectory{
		Total:     len(employees),
		Active:    metrics.Count(employees, byStatus(hr.EmploymentActive)),
		OnLeave:   metrics.Count(employees, byStatus(hr.EmploymentOnLeave)),
		Inactive:  metrics.Count(employees, byStatus(hr.EmploymentInactive)),
		Employees: []EmployeeRow{},
	}
	for _, e := range employees {
		if !filter.matches(e) {
			continue
		}
		dir.Employees = append(dir.Employees, EmployeeRow{
			Person:     personOf(e.Ref()),
			Department: e.Department,
			Email:      e.Email,
			Phone:      e.Phone,
			StartDate:  e.StartDate,
			Salary:     money(e.Salary),
			Status:     statusBadge(e.Status),
		})
	}
	return dir
}
