package calendar

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const Layout = "2006-01-02"

const day = 24 * time.Hour

var ErrInvalidDate = errors.New("calendar: invalid date")

// InvalidDateError reports a value that is not a YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	if e.Err != nil {
		return "calendar: invalid date " + strconv.Quote(e.Value) + ": " + e.Err.Error()
	}
	return "calendar: invalid date " + strconv.Quote(e.Value)
}

func (e *InvalidDateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidDate}
	}
	return []error{ErrInvalidDate, e.Err}
}

// Date is a civil calendar day with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, dayOfMonth int) Date {
	return FromTime(time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC), time.UTC)
}

// Parse accepts YYYY-MM-DD only.
func Parse(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, &InvalidDateError{Value: value}
	}
	parsed, err := time.Parse(Layout, trimmed)
	if err != nil {
		return Date{}, &InvalidDateError{Value: value, Err: err}
	}
	return FromTime(parsed, time.UTC), nil
}

// FromTime returns the wall-clock date of t in loc.
func FromTime(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today is the current date as observed in loc.
func Today(now time.Time, loc *time.Location) Date {
	return FromTime(now, loc)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(Layout)
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.midnight().AddDate(0, 0, n), time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

// DaysUntil counts whole calendar days from d to other. Negative when other is earlier.
// Both ends are taken at UTC midnight so offsets and DST never change the count.
func (d Date) DaysUntil(other Date) int {
	return int(other.midnight().Sub(d.midnight()) / day)
}

func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

func (d Date) After(other Date) bool {
	return d.midnight().After(other.midnight())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// Format renders d with a time layout, e.g. "January 2, 2006".
func (d Date) Format(layout string) string {
	return d.midnight().Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &InvalidDateError{Value: string(data), Err: err}
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return &InvalidDateError{Value: node.Value, Err: err}
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
