package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreZeroLimit(t *testing.T) {
	_, err := Score(100, 0)
	require.ErrorIs(t, err, ErrZeroCreditLimit)

	_, err = Score(100, -50)
	require.ErrorIs(t, err, ErrZeroCreditLimit)
}

func TestScoreKnownValues(t *testing.T) {
	cases := []struct {
		name  string
		used  float64
		limit float64
		want  int
	}{
		// U=20 -> 85+(30-20)*0.5=90, bonus 8 -> 98
		{"low usage", 200, 1000, 98},
		// U=95 -> 20+(100-95)*0.5=22.5, bonus 0.5 -> 23
		{"critical usage", 950, 1000, 23},
		// U=0 -> 85+15=100, bonus 10, capped at 100
		{"unused card", 0, 1000, 100},
		// U=50 -> 70+(50-50)*1.0=70, bonus 5 -> 75
		{"half used", 500, 1000, 75},
		// U=70 -> 50+(70-70)*1.5=50, bonus 3 -> 53
		{"seventy percent", 700, 1000, 53},
		// U=90 -> 30+(90-90)*1.5=30, bonus 1 -> 31
		{"ninety percent", 900, 1000, 31},
		// U=100 -> 20+0=20, bonus 0 -> 20
		{"fully used", 1000, 1000, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Score(tc.used, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScoreBoundedForRegularUsage(t *testing.T) {
	for used := 0.0; used <= 1000; used += 25 {
		got, err := Score(used, 1000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0, "used=%v", used)
		assert.LessOrEqual(t, got, 100, "used=%v", used)
	}
}

func TestScoreMonotonicWithinSegments(t *testing.T) {
	// Within each piecewise segment the score never increases with usage.
	segments := [][2]float64{{0, 300}, {301, 500}, {501, 700}, {701, 900}, {901, 1000}}
	for _, seg := range segments {
		prev := 101
		for used := seg[0]; used <= seg[1]; used += 10 {
			got, err := Score(used, 1000)
			require.NoError(t, err)
			assert.LessOrEqual(t, got, prev, "used=%v", used)
			prev = got
		}
	}
}

func TestScoreOverLimitNotClamped(t *testing.T) {
	// used > limit turns the bonus negative; the formula is preserved as-is
	// rather than floored at zero.
	got, err := Score(3000, 1000)
	require.NoError(t, err)
	// U=300 -> 20+(100-300)*0.5=-80, bonus -20 -> -100
	assert.Equal(t, -100, got)
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations(800, 1000, 40)
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "70%")
	assert.Contains(t, recs[1], "faturas em dia")

	recs = Recommendations(100, 1000, 98)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "ótimo")

	assert.Nil(t, Recommendations(100, 0, 0))
}
