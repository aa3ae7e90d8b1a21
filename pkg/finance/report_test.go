package finance

import (
	"testing"
	"time"

	"fineasy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMonthlyReportEmptyMonth(t *testing.T) {
	now := date(2025, time.May, 10)
	txs := []models.Transaction{
		tx(models.TypeIncome, 100, date(2025, time.April, 10), ""), // previous month
	}
	_, err := ComposeMonthlyReport(txs, now)
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestComposeMonthlyReport(t *testing.T) {
	now := date(2025, time.January, 20)
	txs := []models.Transaction{
		tx(models.TypeIncome, 4000, date(2025, time.January, 5), ""),
		tx(models.TypeExpense, 900, date(2025, time.January, 8), "Moradia"),
		tx(models.TypeExpense, 300, date(2025, time.January, 12), "Alimentação"),
		tx(models.TypeExpense, 100, date(2025, time.January, 14), ""), // no category: listed but not in the table
		tx(models.TypeIncome, 50, date(2024, time.December, 31), ""),  // outside the month
	}

	r, err := ComposeMonthlyReport(txs, now)
	require.NoError(t, err)

	assert.Equal(t, "janeiro de 2025", r.MonthLabel)
	assert.Equal(t, 4000.0, r.Income)
	assert.Equal(t, 1300.0, r.Expense)
	assert.Equal(t, 2700.0, r.Balance)
	assert.Equal(t, 4, r.Count)
	assert.Equal(t, tipPositive, r.Tip)

	require.Len(t, r.Categories, 2)
	assert.Equal(t, "Moradia", r.Categories[0].Name)
	assert.Equal(t, 69.2, r.Categories[0].Percent)
	assert.Equal(t, "Alimentação", r.Categories[1].Name)

	require.Len(t, r.Rows, 4)
	// newest first
	assert.Equal(t, "14/01/2025", r.Rows[0].Date)
	assert.Equal(t, "Sem categoria", r.Rows[0].Category)
	assert.Equal(t, "Despesa", r.Rows[0].Type)
	assert.Equal(t, "Receita", r.Rows[3].Type)
}

func TestComposeMonthlyReportNegativeBalanceTip(t *testing.T) {
	now := date(2025, time.January, 20)
	txs := []models.Transaction{
		tx(models.TypeExpense, 900, date(2025, time.January, 8), "Moradia"),
	}
	r, err := ComposeMonthlyReport(txs, now)
	require.NoError(t, err)
	assert.Equal(t, tipNegative, r.Tip)
}

func TestReportFilename(t *testing.T) {
	r := &MonthlyReport{MonthLabel: "janeiro de 2025"}
	assert.Equal(t, "relatorio-janeiro-de-2025.pdf", r.Filename("pdf"))
	assert.Equal(t, "relatorio-janeiro-de-2025.xlsx", r.Filename("xlsx"))
}
