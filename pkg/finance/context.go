package finance

import (
	"fmt"
	"strings"
	"time"

	"fineasy/models"
)

// maxContextBytes bounds the text block injected into the model prompt.
const maxContextBytes = 6 * 1024

// CardSummary is the scored view of one card for prompts and listings.
// Scored is false when the card's limit is not positive.
type CardSummary struct {
	Name            string   `json:"card_name"`
	Brand           string   `json:"card_brand"`
	CreditLimit     float64  `json:"credit_limit"`
	UsedLimit       float64  `json:"used_limit"`
	AvailableLimit  float64  `json:"available_limit"`
	UsagePercent    float64  `json:"usage_percent"`
	Score           int      `json:"score"`
	Scored          bool     `json:"scored"`
	ClosingDay      int      `json:"closing_day"`
	DueDay          int      `json:"due_day"`
	Recommendations []string `json:"recommendations"`
}

// GoalSummary is the projected view of one goal for prompts.
type GoalSummary struct {
	Name       string     `json:"goal_name"`
	Progress   float64    `json:"progress"`
	Target     float64    `json:"target"`
	Remaining  float64    `json:"remaining"`
	TargetDate *time.Time `json:"target_date"`
}

// SummarizeCards scores every card; cards with a non-positive limit come
// back unscored rather than failing the whole summary.
func SummarizeCards(cards []models.CreditCard) []CardSummary {
	out := make([]CardSummary, 0, len(cards))
	for _, c := range cards {
		s := CardSummary{
			Name:           c.CardName,
			Brand:          c.CardBrand,
			CreditLimit:    c.CreditLimit,
			UsedLimit:      c.UsedLimit,
			AvailableLimit: round2(c.CreditLimit - c.UsedLimit),
			ClosingDay:     c.ClosingDay,
			DueDay:         c.DueDay,
		}
		if score, err := Score(c.UsedLimit, c.CreditLimit); err == nil {
			s.Score = score
			s.Scored = true
			s.UsagePercent = round1(c.UsedLimit / c.CreditLimit * 100)
			s.Recommendations = Recommendations(c.UsedLimit, c.CreditLimit, score)
		}
		out = append(out, s)
	}
	return out
}

// SummarizeGoals projects every goal against the shared history snapshot.
func SummarizeGoals(goals []models.FinancialGoal, txs []models.Transaction, cards []models.CreditCard, now time.Time) []GoalSummary {
	out := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		p := Project(g, txs, cards, now)
		out = append(out, GoalSummary{
			Name:       g.GoalName,
			Progress:   p.Progress,
			Target:     g.TargetAmount,
			Remaining:  p.Remaining,
			TargetDate: g.TargetDate,
		})
	}
	return out
}

// BuildContext renders the financial context block injected into the chat
// system prompt: overall totals, the category breakdown with percentages,
// per-card usage and score, and per-goal progress. The result is truncated
// to a fixed byte budget so the prompt stays bounded.
func BuildContext(totals Totals, categories []CategoryTotal, cards []CardSummary, goals []GoalSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Contexto Financeiro do Usuário:\n")
	fmt.Fprintf(&b, "- Receitas totais: R$ %.2f\n", totals.Income)
	fmt.Fprintf(&b, "- Despesas totais: R$ %.2f\n", totals.Expense)
	fmt.Fprintf(&b, "- Saldo: R$ %.2f\n", totals.Balance)
	fmt.Fprintf(&b, "- Número de transações: %d\n", totals.Count)

	if len(categories) > 0 {
		b.WriteString("\nGastos por categoria:\n")
		for _, c := range categories {
			var pct float64
			if totals.Expense > 0 {
				pct = c.Value / totals.Expense * 100
			}
			fmt.Fprintf(&b, "- %s: R$ %.2f (%.1f%%)\n", c.Name, c.Value, pct)
		}
	}

	if len(cards) > 0 {
		b.WriteString("\nCartões de crédito:\n")
		for _, c := range cards {
			if c.Scored {
				fmt.Fprintf(&b, "- %s (%s): uso R$ %.2f de R$ %.2f (%.1f%%), score %d, fecha dia %d, vence dia %d\n",
					c.Name, c.Brand, c.UsedLimit, c.CreditLimit, c.UsagePercent, c.Score, c.ClosingDay, c.DueDay)
			} else {
				fmt.Fprintf(&b, "- %s (%s): uso R$ %.2f, sem score (limite inválido)\n", c.Name, c.Brand, c.UsedLimit)
			}
		}
	}

	if len(goals) > 0 {
		b.WriteString("\nMetas financeiras:\n")
		for _, g := range goals {
			fmt.Fprintf(&b, "- %s: R$ %.2f de R$ %.2f (faltam R$ %.2f)", g.Name, g.Progress, g.Target, g.Remaining)
			if g.TargetDate != nil {
				fmt.Fprintf(&b, ", alvo %s", g.TargetDate.Format("02/01/2006"))
			}
			b.WriteString("\n")
		}
	}

	s := b.String()
	if len(s) > maxContextBytes {
		s = s[:maxContextBytes]
	}
	return s
}
