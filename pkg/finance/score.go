package finance

import (
	"errors"
	"math"
)

// ErrZeroCreditLimit is returned when a card cannot be scored because its
// limit is not positive. Callers must treat such cards as unscored.
var ErrZeroCreditLimit = errors.New("credit limit must be positive")

// Score computes the 0-100 health score for one credit card from its used
// and total limit. The curve is piecewise over the usage percentage, with a
// bonus proportional to the available limit. The result is capped at 100 but
// deliberately not floored at 0: pathological over-limit inputs may score
// negative, and that is surfaced rather than hidden.
func Score(used, limit float64) (int, error) {
	if limit <= 0 {
		return 0, ErrZeroCreditLimit
	}
	u := used / limit * 100

	var s float64
	switch {
	case u > 90:
		s = 20 + (100-u)*0.5
	case u > 70:
		s = 30 + (90-u)*1.5
	case u > 50:
		s = 50 + (70-u)*1.5
	case u > 30:
		s = 70 + (50-u)*1.0
	default:
		s = 85 + (30-u)*0.5
	}

	// available may be negative when used > limit; the bonus then subtracts.
	bonus := math.Min(10, (limit-used)/limit*10)

	final := math.Round(s + bonus)
	if final > 100 {
		final = 100
	}
	return int(final), nil
}

// Recommendations returns the advice lines applicable to a card, in display
// order. All that apply are returned independently.
func Recommendations(used, limit float64, score int) []string {
	if limit <= 0 {
		return nil
	}
	u := used / limit * 100

	var recs []string
	if u > 70 {
		recs = append(recs, "Reduza o uso do cartão para abaixo de 70% do limite")
	}
	if u < 30 {
		recs = append(recs, "Seu uso está ótimo! Continue assim para manter o score alto")
	}
	if score < 50 {
		recs = append(recs, "Pague suas faturas em dia para melhorar seu score")
	}
	return recs
}
