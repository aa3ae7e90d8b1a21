package finance

import (
	"sort"
	"time"

	"fineasy/models"
)

// CardCategoryName is the synthetic category holding all credit-card usage.
const CardCategoryName = "Cartões de Crédito"

// UncategorizedName labels expense transactions without a category.
const UncategorizedName = "Outros"

// Period selects the aggregation window. An explicit Start/End range wins
// over the last-N-months selector when both are present; both bounds are
// inclusive.
type Period struct {
	Months int
	Start  *time.Time
	End    *time.Time
}

// Resolve turns the selector into a concrete [start, end] range.
// "N months back" starts on the first day of the month N months before now.
func (p Period) Resolve(now time.Time) (time.Time, time.Time) {
	if p.Start != nil && p.End != nil {
		return *p.Start, *p.End
	}
	months := p.Months
	if months <= 0 {
		months = 6
	}
	start := time.Date(now.Year(), now.Month()-time.Month(months), 1, 0, 0, 0, 0, now.Location())
	return start, now
}

// Bucket holds one calendar month's totals.
type Bucket struct {
	Label   string  `json:"mes"`
	Income  float64 `json:"receitas"`
	Expense float64 `json:"despesas"`
	Balance float64 `json:"saldo"`

	Year  int `json:"-"`
	Month int `json:"-"`
}

// CategoryTotal is one slice of the expense-by-category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Totals are the whole-history sums shown on the dashboard and fed to the
// AI context builder. Expense includes both expense transactions and the
// full used limit of every credit card.
type Totals struct {
	Income      float64 `json:"receitas"`
	TxExpense   float64 `json:"despesas_transacoes"`
	CardExpense float64 `json:"despesas_cartoes"`
	Expense     float64 `json:"despesas"`
	Balance     float64 `json:"saldo"`
	Count       int     `json:"numero_de_transacoes"`
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func categoryMatches(t models.Transaction, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return t.Category != nil && t.Category.Name == category
}

// MonthlyBuckets groups transactions and credit-card snapshots into calendar
// month buckets within the resolved period. A card's entire used limit is
// attributed as expense to the month the card was created, not spread across
// months. Buckets come back sorted ascending by (year, month) and every total
// is rounded to 2 decimals after accumulation.
func MonthlyBuckets(txs []models.Transaction, cards []models.CreditCard, p Period, category string, now time.Time) []Bucket {
	start, end := p.Resolve(now)

	type acc struct {
		income  float64
		expense float64
	}
	byMonth := map[[2]int]*acc{}

	get := func(d time.Time) *acc {
		key := [2]int{d.Year(), int(d.Month())}
		a, ok := byMonth[key]
		if !ok {
			a = &acc{}
			byMonth[key] = a
		}
		return a
	}

	for _, t := range txs {
		if !categoryMatches(t, category) {
			continue
		}
		if !inRange(t.Date, start, end) {
			continue
		}
		a := get(t.Date)
		if t.Type == models.TypeIncome {
			a.income += amountOf(t)
		} else {
			a.expense += amountOf(t)
		}
	}

	for _, c := range cards {
		if !inRange(c.CreatedAt, start, end) {
			continue
		}
		get(c.CreatedAt).expense += c.UsedLimit
	}

	buckets := make([]Bucket, 0, len(byMonth))
	for key, a := range byMonth {
		d := time.Date(key[0], time.Month(key[1]), 1, 0, 0, 0, 0, time.UTC)
		buckets = append(buckets, Bucket{
			Label:   MonthKey(d),
			Income:  round2(a.income),
			Expense: round2(a.expense),
			Balance: round2(a.income - a.expense),
			Year:    key[0],
			Month:   key[1],
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// CategoryBreakdown groups all expense transactions by category name, adds a
// synthetic credit-card category when any card carries usage, and returns the
// top 8 slices sorted descending by value. The remainder is dropped.
func CategoryBreakdown(txs []models.Transaction, cards []models.CreditCard) []CategoryTotal {
	sums := map[string]float64{}
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		name := UncategorizedName
		if t.Category != nil {
			name = t.Category.Name
		}
		sums[name] += amountOf(t)
	}

	var cardTotal float64
	for _, c := range cards {
		cardTotal += c.UsedLimit
	}
	if cardTotal > 0 {
		sums[CardCategoryName] = cardTotal
	}

	out := make([]CategoryTotal, 0, len(sums))
	for name, v := range sums {
		out = append(out, CategoryTotal{Name: name, Value: round2(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

// ComputeTotals sums the full history: income and expense transactions in
// base currency plus every card's used limit on the expense side.
func ComputeTotals(txs []models.Transaction, cards []models.CreditCard) Totals {
	var t Totals
	for _, tx := range txs {
		if tx.Type == models.TypeIncome {
			t.Income += amountOf(tx)
		} else {
			t.TxExpense += amountOf(tx)
		}
	}
	for _, c := range cards {
		t.CardExpense += c.UsedLimit
	}
	t.Count = len(txs)
	t.Expense = round2(t.TxExpense + t.CardExpense)
	t.Income = round2(t.Income)
	t.TxExpense = round2(t.TxExpense)
	t.CardExpense = round2(t.CardExpense)
	t.Balance = round2(t.Income - t.Expense)
	return t
}
