// Package finance implements the pure derivation layer: period aggregation,
// credit-card scoring, goal projection, trend detection and report/context
// composition. Every function here is side-effect free and operates on
// snapshots of the caller's records; nothing in this package touches the
// database or the network.
package finance

import (
	"fmt"
	"math"
	"time"

	"fineasy/models"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

var monthShort = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var monthLong = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// amountOf returns the base-currency value of a transaction, falling back to
// the original amount when no converted value was stored.
func amountOf(t models.Transaction) float64 {
	if t.AmountBRL != nil {
		return *t.AmountBRL
	}
	return t.Amount
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MonthKey returns the "MMM/YY" bucket label for a date, e.g. "jan/25".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%s/%02d", monthShort[int(t.Month())-1], t.Year()%100)
}

// MonthYearLabel returns the long month label for a date, e.g. "janeiro de 2025".
func MonthYearLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthLong[int(t.Month())-1], t.Year())
}
