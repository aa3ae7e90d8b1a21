package finance

import "math"

// Trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Trend messages surfaced to the user.
const (
	msgInsufficient = "Dados insuficientes"
	msgNoHistory    = "Sem histórico anterior"
	msgImproving    = "Você está economizando mais!"
	msgWorsening    = "Gastos aumentaram no último mês"
	msgStable       = "Finanças estáveis"
)

// Trend classifies the change between the two most recent monthly buckets.
// Percentage is signed and rounded to 1 decimal.
type Trend struct {
	Direction  string  `json:"direction"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

// DetectTrend compares the net balance of the last bucket against the
// second-to-last. Fewer than two buckets or a prior balance of exactly zero
// yield sentinel results instead of a division.
func DetectTrend(buckets []Bucket) Trend {
	if len(buckets) < 2 {
		return Trend{Direction: TrendStable, Message: msgInsufficient}
	}
	last := buckets[len(buckets)-1].Balance
	prev := buckets[len(buckets)-2].Balance
	if prev == 0 {
		return Trend{Direction: TrendStable, Message: msgNoHistory}
	}

	pct := round1((last - prev) / math.Abs(prev) * 100)
	switch {
	case pct > 5:
		return Trend{Direction: TrendUp, Percentage: pct, Message: msgImproving}
	case pct < -5:
		return Trend{Direction: TrendDown, Percentage: pct, Message: msgWorsening}
	default:
		return Trend{Direction: TrendStable, Percentage: pct, Message: msgStable}
	}
}
