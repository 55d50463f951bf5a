package dashboard

import (
	"github.com/shopspring/decimal"

	"hrdash/internal/domain/hr"
	"hrdash/internal/domain/metrics"
)

// Badge is a status pill: display text plus colour tier.
type Badge struct {
	Label string       `json:"label"`
	Tier  metrics.Tier `json:"tier"`
}

func statusBadge[S metrics.Status](status S) Badge {
	return Badge{Label: metrics.StatusLabel(status), Tier: metrics.StatusTier(status)}
}

// Person is the identity block shared by every table row.
type Person struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Position string `json:"position"`
}

func personOf(ref hr.EmployeeRef) Person {
	return Person{ID: ref.ID, Name: ref.Name, Initials: metrics.Initials(ref.Name), Position: ref.Position}
}

// Money is an amount with its display form.
type Money struct {
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
}

func money(amount float64) Money {
	return Money{Amount: amount, Label: metrics.FormatCurrency(amount, metrics.Whole)}
}

func round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}
