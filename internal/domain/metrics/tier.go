package metrics

import "hrdash/internal/domain/hr"

// Tier is the coarse display class used to colour a status badge.
type Tier string

const (
	TierSuccess Tier = "success"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
	TierInfo    Tier = "info"
	TierNeutral Tier = "neutral"
)

var attendanceTiers = map[hr.AttendanceStatus]Tier{
	hr.AttendancePresent:  TierSuccess,
	hr.AttendanceLate:     TierWarning,
	hr.AttendanceAbsent:   TierDanger,
	hr.AttendanceOvertime: TierInfo,
}

var payrollTiers = map[hr.PayrollStatus]Tier{
	hr.PayrollProcessed: TierSuccess,
	hr.PayrollReviewed:  TierWarning,
	hr.PayrollPending:   TierNeutral,
}

var benefitTiers = map[hr.BenefitStatus]Tier{
	hr.BenefitEnrolled: TierSuccess,
	hr.BenefitPending:  TierWarning,
	hr.BenefitDeclined: TierDanger,
}

var employmentTiers = map[hr.EmploymentStatus]Tier{
	hr.EmploymentActive:   TierSuccess,
	hr.EmploymentOnLeave:  TierWarning,
	hr.EmploymentInactive: TierNeutral,
}

var activityTiers = map[hr.ActivityStatus]Tier{
	hr.ActivitySuccess: TierSuccess,
	hr.ActivityWarning: TierWarning,
	hr.ActivityInfo:    TierInfo,
}

// Status is the closed set of status domains that have a tier table.
type Status interface {
	hr.AttendanceStatus | hr.PayrollStatus | hr.BenefitStatus | hr.EmploymentStatus | hr.ActivityStatus
}

// StatusTier maps a status to its display tier. Values missing from the table are neutral.
func StatusTier[S Status](status S) Tier {
	switch s := any(status).(type) {
	case hr.AttendanceStatus:
		return lookup(attendanceTiers, s)
	case hr.PayrollStatus:
		return lookup(payrollTiers, s)
	case hr.BenefitStatus:
		return lookup(benefitTiers, s)
	case hr.EmploymentStatus:
		return lookup(employmentTiers, s)
	case hr.ActivityStatus:
		return lookup(activityTiers, s)
	}
	return TierNeutral
}

func lookup[S comparable](table map[S]Tier, status S) Tier {
	if tier, ok := table[status]; ok {
		return tier
	}
	return TierNeutral
}

// PerformanceTier grades a 0-5 rating: 4.5 and up is success, 4.0 and up is warning.
func PerformanceTier(rating float64) Tier {
	switch {
	case rating >= HighPerformerRating:
		return TierSuccess
	case rating >= 4.0:
		return TierWarning
	default:
		return TierNeutral
	}
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

func TrendOf(change float64) Trend {
	switch {
	case change > 0:
		return TrendUp
	case change < 0:
		return TrendDown
	default:
		return TrendNeutral
	}
}
