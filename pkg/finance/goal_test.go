package finance

import (
	"testing"
	"time"

	"fineasy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalAt(created time.Time, target, baseline, contribution float64) models.FinancialGoal {
	return models.FinancialGoal{
		GoalName:            "Viagem",
		TargetAmount:        target,
		CurrentAmount:       baseline,
		MonthlyContribution: contribution,
		CreatedAt:           created,
	}
}

func TestProjectEndToEndScenario(t *testing.T) {
	// Goal created 2024-01-01 targeting 12000; three months of history with
	// 8000 income and 2000 expense. Savings 6000, 30% captured.
	created := date(2024, time.January, 1)
	now := date(2024, time.April, 1)
	g := goalAt(created, 12000, 0, 0)
	txs := []models.Transaction{
		tx(models.TypeIncome, 5000, date(2024, time.January, 10), ""),
		tx(models.TypeIncome, 3000, date(2024, time.February, 10), ""),
		tx(models.TypeExpense, 2000, date(2024, time.March, 10), "Moradia"),
	}

	p := Project(g, txs, nil, now)
	assert.Equal(t, 1800.0, p.Progress)            // 6000 * 0.30
	assert.Equal(t, 600.0, p.RealizedMonthly)      // (6000/3) * 0.30
	require.NotNil(t, p.MonthsToCompletion)
	assert.Equal(t, 17, *p.MonthsToCompletion)     // ceil((12000-1800)/600)
	require.NotNil(t, p.ProjectedDate)
	assert.Equal(t, date(2025, time.September, 1), *p.ProjectedDate)
	assert.False(t, p.Reached)
}

func TestProjectIgnoresHistoryBeforeCreation(t *testing.T) {
	created := date(2024, time.March, 1)
	now := date(2024, time.June, 1)
	g := goalAt(created, 1000, 0, 0)
	txs := []models.Transaction{
		tx(models.TypeIncome, 99999, date(2024, time.February, 28), ""), // predates goal
		tx(models.TypeIncome, 1000, date(2024, time.March, 15), ""),
	}
	cards := []models.CreditCard{card(500, 1000, date(2024, time.January, 1))} // predates goal

	p := Project(g, txs, cards, now)
	assert.Equal(t, 300.0, p.Progress)
}

func TestProjectNegativeSavingsKeepsBaseline(t *testing.T) {
	created := date(2024, time.January, 1)
	now := date(2024, time.March, 1)
	g := goalAt(created, 5000, 750, 200)
	txs := []models.Transaction{
		tx(models.TypeExpense, 3000, date(2024, time.January, 15), "Moradia"),
	}

	p := Project(g, txs, nil, now)
	// Negative savings contribute zero, so progress stays at the baseline
	// and the manual contribution drives the estimate.
	assert.Equal(t, 750.0, p.Progress)
	assert.Equal(t, 200.0, p.RealizedMonthly)
	require.NotNil(t, p.MonthsToCompletion)
	assert.Equal(t, 22, *p.MonthsToCompletion) // ceil(4250/200)
}

func TestProjectUndetermined(t *testing.T) {
	created := date(2024, time.January, 1)
	now := date(2024, time.March, 1)
	g := goalAt(created, 5000, 0, 0)

	p := Project(g, nil, nil, now)
	assert.Nil(t, p.MonthsToCompletion)
	assert.Nil(t, p.ProjectedDate)
	assert.False(t, p.Reached)
}

func TestProjectGoalReached(t *testing.T) {
	created := date(2024, time.January, 1)
	now := date(2024, time.February, 1)
	g := goalAt(created, 1000, 1000, 0)

	p := Project(g, nil, nil, now)
	require.NotNil(t, p.MonthsToCompletion)
	assert.Equal(t, 0, *p.MonthsToCompletion)
	require.NotNil(t, p.ProjectedDate)
	assert.Equal(t, now, *p.ProjectedDate)
	assert.True(t, p.Reached)
	assert.Equal(t, 0.0, p.Remaining)
}

func TestProjectCardsSinceGoalReduceSavings(t *testing.T) {
	created := date(2024, time.January, 1)
	now := date(2024, time.April, 1)
	g := goalAt(created, 10000, 0, 0)
	txs := []models.Transaction{
		tx(models.TypeIncome, 4000, date(2024, time.January, 10), ""),
	}
	cards := []models.CreditCard{card(1000, 2000, date(2024, time.February, 1))}

	p := Project(g, txs, cards, now)
	// savings 4000-1000=3000, progress 900
	assert.Equal(t, 900.0, p.Progress)
}

func TestWholeMonths(t *testing.T) {
	assert.Equal(t, 3, wholeMonths(date(2024, time.January, 1), date(2024, time.April, 1)))
	assert.Equal(t, 2, wholeMonths(date(2024, time.January, 15), date(2024, time.April, 14)))
	assert.Equal(t, 0, wholeMonths(date(2024, time.January, 1), date(2024, time.January, 20)))
	assert.Equal(t, 0, wholeMonths(date(2024, time.May, 1), date(2024, time.January, 1)))
}

func TestHistorySeries(t *testing.T) {
	created := date(2024, time.January, 5)
	now := date(2024, time.March, 20)
	g := goalAt(created, 1000, 0, 0)
	txs := []models.Transaction{
		tx(models.TypeIncome, 1000, date(2024, time.January, 10), ""),
		tx(models.TypeIncome, 2000, date(2024, time.February, 10), ""),
		tx(models.TypeIncome, 9000, date(2024, time.March, 10), ""),
	}

	points := History(g, txs, nil, now)
	require.Len(t, points, 3)
	assert.Equal(t, "jan/24", points[0].Label)
	assert.Equal(t, 300.0, points[0].Progress) // 1000 * 0.30 as of January end
	assert.Equal(t, 900.0, points[1].Progress) // cumulative 3000 * 0.30
	assert.Equal(t, 1000.0, points[2].Progress) // clamped to target
	for _, p := range points {
		assert.Equal(t, 1000.0, p.Target)
	}
}
