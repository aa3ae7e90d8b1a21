package finance

import (
	"math"
	"time"

	"fineasy/models"
)

// SavingsCaptureRate is the fixed policy constant attributing a fraction of
// net positive savings to goal progress.
const SavingsCaptureRate = 0.30

// Projection is the derived state of one goal: live progress, the realized
// monthly contribution, and the estimated completion horizon.
// MonthsToCompletion is nil when no positive contribution exists to project
// from ("undetermined").
type Projection struct {
	Progress           float64    `json:"current_progress"`
	Remaining          float64    `json:"remaining"`
	RealizedMonthly    float64    `json:"realized_monthly_contribution"`
	MonthsToCompletion *int       `json:"months_to_completion"`
	ProjectedDate      *time.Time `json:"projected_date"`
	Reached            bool       `json:"reached"`
}

// HistoryPoint is one month of a goal's progress series for charting.
type HistoryPoint struct {
	Label    string  `json:"mes"`
	Progress float64 `json:"progresso"`
	Target   float64 `json:"meta"`
}

// savingsSince sums net savings over the goal's relevant window: income minus
// expense transactions minus the used limit of every card created since the
// goal, considering only records dated up to the cutoff.
func savingsSince(goal models.FinancialGoal, txs []models.Transaction, cards []models.CreditCard, cutoff time.Time) float64 {
	var savings float64
	for _, t := range txs {
		if t.Date.Before(goal.CreatedAt) || t.Date.After(cutoff) {
			continue
		}
		if t.Type == models.TypeIncome {
			savings += amountOf(t)
		} else {
			savings -= amountOf(t)
		}
	}
	for _, c := range cards {
		if c.CreatedAt.Before(goal.CreatedAt) || c.CreatedAt.After(cutoff) {
			continue
		}
		savings -= c.UsedLimit
	}
	return savings
}

// wholeMonths counts complete calendar months between two dates.
func wholeMonths(from, to time.Time) int {
	m := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		m--
	}
	if m < 0 {
		return 0
	}
	return m
}

// progressAt returns the goal's progress using history up to the cutoff:
// the manual baseline plus 30% of net positive savings. Negative savings
// never reduce progress below the baseline.
func progressAt(goal models.FinancialGoal, txs []models.Transaction, cards []models.CreditCard, cutoff time.Time) float64 {
	savings := savingsSince(goal, txs, cards, cutoff)
	if savings < 0 {
		savings = 0
	}
	return goal.CurrentAmount + savings*SavingsCaptureRate
}

// Project derives a goal's current progress and completion estimate from the
// full transaction/card history.
func Project(goal models.FinancialGoal, txs []models.Transaction, cards []models.CreditCard, now time.Time) Projection {
	savings := savingsSince(goal, txs, cards, now)
	progress := goal.CurrentAmount
	if savings > 0 {
		progress += savings * SavingsCaptureRate
	}

	months := wholeMonths(goal.CreatedAt, now)
	if months < 1 {
		months = 1
	}
	realized := savings / float64(months) * SavingsCaptureRate
	if realized <= 0 {
		realized = goal.MonthlyContribution
	}

	p := Projection{
		Progress:        round2(progress),
		Remaining:       round2(goal.TargetAmount - progress),
		RealizedMonthly: round2(realized),
	}

	if progress >= goal.TargetAmount {
		zero := 0
		p.MonthsToCompletion = &zero
		p.ProjectedDate = &now
		p.Reached = true
		p.Remaining = 0
		return p
	}
	if realized <= 0 {
		return p // undetermined
	}

	n := int(math.Ceil((goal.TargetAmount - progress) / realized))
	date := now.AddDate(0, n, 0)
	p.MonthsToCompletion = &n
	p.ProjectedDate = &date
	return p
}

// History emits one progress point per calendar month from the goal's
// creation through now, each computed as of that month's end and clamped to
// [0, target] for charting, alongside the constant target line.
func History(goal models.FinancialGoal, txs []models.Transaction, cards []models.CreditCard, now time.Time) []HistoryPoint {
	var points []HistoryPoint
	cur := time.Date(goal.CreatedAt.Year(), goal.CreatedAt.Month(), 1, 0, 0, 0, 0, goal.CreatedAt.Location())
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for !cur.After(last) {
		monthEnd := cur.AddDate(0, 1, 0).Add(-time.Nanosecond)
		progress := progressAt(goal, txs, cards, monthEnd)
		if progress < 0 {
			progress = 0
		}
		if progress > goal.TargetAmount {
			progress = goal.TargetAmount
		}
		points = append(points, HistoryPoint{
			Label:    MonthKey(cur),
			Progress: round2(progress),
			Target:   goal.TargetAmount,
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return points
}
