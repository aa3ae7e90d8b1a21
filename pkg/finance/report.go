package finance

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fineasy/models"
)

// ErrEmptyReport means no transactions exist in the requested month. It is
// raised before any document or email transport is touched.
var ErrEmptyReport = errors.New("nenhuma transação encontrada para este período")

// Report tips by sign of the month's balance.
const (
	tipNegative = "Suas despesas superaram suas receitas este mês. Considere revisar seus gastos!"
	tipPositive = "Parabéns! Você conseguiu economizar este mês. Continue assim!"
)

// CategoryRow is one line of the report's category table.
type CategoryRow struct {
	Name    string  `json:"categoria"`
	Amount  float64 `json:"valor"`
	Percent float64 `json:"percentual"`
}

// ReportRow is one transaction line of the full listing.
type ReportRow struct {
	Date        string  `json:"data"`
	Description string  `json:"descricao"`
	Category    string  `json:"categoria"`
	Type        string  `json:"tipo"`
	Amount      float64 `json:"valor"`
}

// MonthlyReport is the flat document model handed to file-writing and
// email-sending collaborators. Byte encoding (PDF layout, spreadsheet cells)
// is the collaborator's problem; this is only the data they must receive.
type MonthlyReport struct {
	MonthLabel string        `json:"mes"`
	Income     float64       `json:"receitas"`
	Expense    float64       `json:"despesas"`
	Balance    float64       `json:"saldo"`
	Categories []CategoryRow `json:"categorias"`
	Rows       []ReportRow   `json:"transacoes"`
	Count      int           `json:"total_transacoes"`
	Tip        string        `json:"dica"`
}

// ComposeMonthlyReport builds the report for the calendar month containing
// now, from the user's full transaction list. Credit cards are not part of
// the monthly report. Returns ErrEmptyReport when the month has no rows.
func ComposeMonthlyReport(txs []models.Transaction, now time.Time) (*MonthlyReport, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var month []models.Transaction
	for _, t := range txs {
		if inRange(t.Date, first, last) {
			month = append(month, t)
		}
	}
	if len(month) == 0 {
		return nil, ErrEmptyReport
	}

	var income, expense float64
	catSums := map[string]float64{}
	for _, t := range month {
		v := amountOf(t)
		if t.Type == models.TypeIncome {
			income += v
			continue
		}
		expense += v
		if t.Category != nil {
			catSums[t.Category.Name] += v
		}
	}

	cats := make([]CategoryRow, 0, len(catSums))
	for name, v := range catSums {
		var pct float64
		if expense > 0 {
			pct = round1(v / expense * 100)
		}
		cats = append(cats, CategoryRow{Name: name, Amount: round2(v), Percent: pct})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Amount != cats[j].Amount {
			return cats[i].Amount > cats[j].Amount
		}
		return cats[i].Name < cats[j].Name
	})

	sort.Slice(month, func(i, j int) bool { return month[i].Date.After(month[j].Date) })
	rows := make([]ReportRow, 0, len(month))
	for _, t := range month {
		catName := "Sem categoria"
		if t.Category != nil {
			catName = t.Category.Name
		}
		typeLabel := "Despesa"
		if t.Type == models.TypeIncome {
			typeLabel = "Receita"
		}
		rows = append(rows, ReportRow{
			Date:        t.Date.Format("02/01/2006"),
			Description: t.Description,
			Category:    catName,
			Type:        typeLabel,
			Amount:      round2(amountOf(t)),
		})
	}

	balance := income - expense
	tip := tipPositive
	if balance < 0 {
		tip = tipNegative
	}
	return &MonthlyReport{
		MonthLabel: MonthYearLabel(now),
		Income:     round2(income),
		Expense:    round2(expense),
		Balance:    round2(balance),
		Categories: cats,
		Rows:       rows,
		Count:      len(month),
		Tip:        tip,
	}, nil
}

// Filename names the downloadable document for this report, e.g.
// "relatorio-janeiro-de-2025.pdf".
func (r *MonthlyReport) Filename(ext string) string {
	return fmt.Sprintf("relatorio-%s.%s", strings.ReplaceAll(r.MonthLabel, " ", "-"), ext)
}
