package finance

import (
	"fmt"
	"testing"
	"time"

	"fineasy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(typ string, amount float64, d time.Time, category string) models.Transaction {
	t := models.Transaction{Type: typ, Amount: amount, Currency: "BRL", Date: d}
	if category != "" {
		t.Category = &models.Category{Name: category}
	}
	return t
}

func card(used, limit float64, created time.Time) models.CreditCard {
	return models.CreditCard{CardName: "card", CreditLimit: limit, UsedLimit: used, CreatedAt: created}
}

func TestMonthlyBucketsOrderingAndTotals(t *testing.T) {
	now := date(2025, time.March, 15)
	txs := []models.Transaction{
		tx(models.TypeExpense, 50, date(2025, time.February, 10), "Alimentação"),
		tx(models.TypeIncome, 3000, date(2025, time.January, 5), ""),
		tx(models.TypeIncome, 3000, date(2025, time.February, 5), ""),
		tx(models.TypeExpense, 120.567, date(2025, time.January, 20), "Transporte"),
	}

	buckets := MonthlyBuckets(txs, nil, Period{Months: 6}, CategoryAll, now)
	require.Len(t, buckets, 2)

	assert.Equal(t, "jan/25", buckets[0].Label)
	assert.Equal(t, "fev/25", buckets[1].Label)
	assert.Equal(t, 3000.0, buckets[0].Income)
	assert.Equal(t, 120.57, buckets[0].Expense) // rounded once, at the edge
	assert.Equal(t, 2879.43, buckets[0].Balance)
	assert.Equal(t, 2950.0, buckets[1].Balance)
}

func TestMonthlyBucketsCardAttributedToCreationMonth(t *testing.T) {
	now := date(2025, time.March, 15)
	cards := []models.CreditCard{card(800, 1000, date(2025, time.February, 2))}

	buckets := MonthlyBuckets(nil, cards, Period{Months: 6}, CategoryAll, now)
	require.Len(t, buckets, 1)
	assert.Equal(t, "fev/25", buckets[0].Label)
	assert.Equal(t, 800.0, buckets[0].Expense)
	assert.Equal(t, -800.0, buckets[0].Balance)
}

func TestMonthlyBucketsExplicitRangeWins(t *testing.T) {
	now := date(2025, time.June, 1)
	start := date(2025, time.January, 1)
	end := date(2025, time.January, 31)
	txs := []models.Transaction{
		tx(models.TypeIncome, 100, date(2025, time.January, 1), ""),  // on start boundary
		tx(models.TypeIncome, 200, date(2025, time.January, 31), ""), // on end boundary
		tx(models.TypeIncome, 400, date(2025, time.February, 1), ""), // outside
	}

	buckets := MonthlyBuckets(txs, nil, Period{Months: 1, Start: &start, End: &end}, CategoryAll, now)
	require.Len(t, buckets, 1)
	assert.Equal(t, 300.0, buckets[0].Income)
}

func TestMonthlyBucketsCategoryFilter(t *testing.T) {
	now := date(2025, time.March, 15)
	txs := []models.Transaction{
		tx(models.TypeExpense, 50, date(2025, time.February, 10), "Alimentação"),
		tx(models.TypeExpense, 70, date(2025, time.February, 11), "Transporte"),
		tx(models.TypeExpense, 30, date(2025, time.February, 12), ""), // uncategorized never matches a filter
	}

	buckets := MonthlyBuckets(txs, nil, Period{Months: 6}, "Alimentação", now)
	require.Len(t, buckets, 1)
	assert.Equal(t, 50.0, buckets[0].Expense)
}

func TestMonthlyBucketsConservation(t *testing.T) {
	// Unfiltered full-range income equals the sum of base-currency amounts.
	now := date(2025, time.December, 31)
	var want float64
	var txs []models.Transaction
	for i := 0; i < 24; i++ {
		amount := float64(i)*13.37 + 0.01
		brl := amount * 5.2
		tr := tx(models.TypeIncome, amount, date(2025, time.Month(i%12+1), i%28+1), "")
		tr.AmountBRL = &brl
		txs = append(txs, tr)
		want += brl
	}

	buckets := MonthlyBuckets(txs, nil, Period{Months: 12}, CategoryAll, now)
	var got float64
	for _, b := range buckets {
		got += b.Income
	}
	assert.InDelta(t, want, got, 0.02)
}

func TestCategoryBreakdownTopEightDescending(t *testing.T) {
	var txs []models.Transaction
	for i := 1; i <= 10; i++ {
		txs = append(txs, tx(models.TypeExpense, float64(i*10), date(2025, time.January, i), fmt.Sprintf("cat-%02d", i)))
	}
	cards := []models.CreditCard{card(500, 1000, date(2025, time.January, 1))}

	out := CategoryBreakdown(txs, cards)
	require.Len(t, out, 8)
	assert.Equal(t, CardCategoryName, out[0].Name)
	assert.Equal(t, 500.0, out[0].Value)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Value, out[i].Value)
	}
	// cat-01 and cat-02 dropped, not folded into a remainder slice
	for _, c := range out {
		assert.NotEqual(t, "cat-01", c.Name)
		assert.NotEqual(t, "cat-02", c.Name)
	}
}

func TestCategoryBreakdownUncategorizedGoesToOutros(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeExpense, 40, date(2025, time.January, 2), ""),
		tx(models.TypeExpense, 10, date(2025, time.January, 3), "Lazer"),
		tx(models.TypeIncome, 999, date(2025, time.January, 4), ""), // income never appears
	}

	out := CategoryBreakdown(txs, nil)
	require.Len(t, out, 2)
	assert.Equal(t, UncategorizedName, out[0].Name)
	assert.Equal(t, 40.0, out[0].Value)
}

func TestComputeTotalsIncludesCardUsage(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeIncome, 5000, date(2025, time.January, 5), ""),
		tx(models.TypeExpense, 1200, date(2025, time.January, 9), "Moradia"),
	}
	cards := []models.CreditCard{card(800, 2000, date(2025, time.January, 1))}

	totals := ComputeTotals(txs, cards)
	assert.Equal(t, 5000.0, totals.Income)
	assert.Equal(t, 1200.0, totals.TxExpense)
	assert.Equal(t, 800.0, totals.CardExpense)
	assert.Equal(t, 2000.0, totals.Expense)
	assert.Equal(t, 3000.0, totals.Balance)
	assert.Equal(t, 2, totals.Count)
}

func TestPeriodResolveDefaults(t *testing.T) {
	now := date(2025, time.March, 15)
	start, end := Period{Months: 3}.Resolve(now)
	assert.Equal(t, date(2024, time.December, 1), start)
	assert.Equal(t, now, end)
}
