package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Precision is the number of fraction digits shown for an amount.
type Precision int

const (
	Whole Precision = 0
	Cents Precision = 2
)

const (
	pesoSign = "₱"
	noValue  = "-"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a peso amount with grouping separators, e.g. "₱945,000" or "-₱1,500.00".
func FormatCurrency(amount float64, precision Precision) string {
	if precision < 0 {
		precision = Whole
	}
	d := decimal.NewFromFloat(amount).Round(int32(precision))
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	value := d.InexactFloat64()
	digits := int(precision)
	return sign + pesoSign + printer.Sprintf("%v", number.Decimal(value, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

// FormatCompactCurrency abbreviates large amounts to one decimal: "₱945K", "₱1.2M".
func FormatCompactCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	switch {
	case d.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return sign + pesoSign + d.Div(decimal.NewFromInt(1_000_000)).Round(1).String() + "M"
	case d.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return sign + pesoSign + d.Div(decimal.NewFromInt(1_000)).Round(1).String() + "K"
	default:
		return FormatCurrency(amount, Whole)
	}
}

// FormatHours renders decimal hours as "{h}h {m}m". Nil means no data and renders "-".
// Minutes are rounded on the total so 59.5 minutes or more carries into the next hour.
func FormatHours(hours *float64) string {
	if hours == nil || *hours < 0 || math.IsNaN(*hours) || math.IsInf(*hours, 0) {
		return noValue
	}
	total := int64(math.Round(*hours * 60))
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// Initials returns the upper-cased first letter of each word. An empty name yields "".
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FormatPercent renders a percentage rounded to the given digits, without trailing zeros.
func FormatPercent(value float64, digits int32) string {
	return decimal.NewFromFloat(value).Round(digits).String() + "%"
}

// FormatChange renders a signed one-decimal change, e.g. "+5.2%".
func FormatChange(value float64) string {
	rounded := decimal.NewFromFloat(value).Round(1)
	if rounded.IsPositive() {
		return "+" + rounded.String() + "%"
	}
	return rounded.String() + "%"
}

func FormatRating(rating float64) string {
	return strconv.FormatFloat(decimal.NewFromFloat(rating).Round(1).InexactFloat64(), 'f', 1, 64) + "/5"
}

// StatusLabel is the badge text for a status value: "on-leave" becomes "ON LEAVE".
func StatusLabel[S ~string](status S) string {
	return strings.ToUpper(strings.ReplaceAll(string(status), "-", " "))
}
