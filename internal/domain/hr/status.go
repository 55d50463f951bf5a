package hr

import "slices"

type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentInactive EmploymentStatus = "inactive"
	EmploymentOnLeave  EmploymentStatus = "on-leave"
)

var EmploymentStatuses = []EmploymentStatus{EmploymentActive, EmploymentInactive, EmploymentOnLeave}

func (s EmploymentStatus) Valid() bool { return slices.Contains(EmploymentStatuses, s) }

type AttendanceStatus string

const (
	AttendancePresent  AttendanceStatus = "present"
	AttendanceLate     AttendanceStatus = "late"
	AttendanceAbsent   AttendanceStatus = "absent"
	AttendanceOvertime AttendanceStatus = "overtime"
)

var AttendanceStatuses = []AttendanceStatus{AttendancePresent, AttendanceLate, AttendanceAbsent, AttendanceOvertime}

func (s AttendanceStatus) Valid() bool { return slices.Contains(AttendanceStatuses, s) }

// Attended reports whether the employee was on site, regardless of punctuality.
func (s AttendanceStatus) Attended() bool {
	return s == AttendancePresent || s == AttendanceLate || s == AttendanceOvertime
}

type PayrollStatus string

const (
	PayrollProcessed PayrollStatus = "processed"
	PayrollPending   PayrollStatus = "pending"
	PayrollReviewed  PayrollStatus = "reviewed"
)

var PayrollStatuses = []PayrollStatus{PayrollProcessed, PayrollPending, PayrollReviewed}

func (s PayrollStatus) Valid() bool { return slices.Contains(PayrollStatuses, s) }

type BenefitStatus string

const (
	BenefitEnrolled BenefitStatus = "enrolled"
	BenefitPending  BenefitStatus = "pending"
	BenefitDeclined BenefitStatus = "declined"
)

var BenefitStatuses = []BenefitStatus{BenefitEnrolled, BenefitPending, BenefitDeclined}

func (s BenefitStatus) Valid() bool { return slices.Contains(BenefitStatuses, s) }

type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityInfo    ActivityStatus = "info"
)

var ActivityStatuses = []ActivityStatus{ActivitySuccess, ActivityWarning, ActivityInfo}

func (s ActivityStatus) Valid() bool { return slices.Contains(ActivityStatuses, s) }

type ActivityType string

const (
	ActivityAttendance ActivityType = "attendance"
	ActivityPayroll    ActivityType = "payroll"
	ActivityEmployee   ActivityType = "employee"
)

var ActivityTypes = []ActivityType{ActivityAttendance, ActivityPayroll, ActivityEmployee}

func (t ActivityType) Valid() bool { return slices.Contains(ActivityTypes, t) }

type ProviderType string

const (
	ProviderHMO       ProviderType = "HMO"
	ProviderInsurance ProviderType = "Insurance"
	ProviderClinic    ProviderType = "Clinic"
)

var ProviderTypes = []ProviderType{ProviderHMO, ProviderInsurance, ProviderClinic}

func (t ProviderType) Valid() bool { return slices.Contains(ProviderTypes, t) }
