package calculation

import (
	"testing"

	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// result builds a minimal run from per-year net worth, with an optional FI age.
func result(startAge int, earned string, fiAge *int, netWorth ...string) *domain.SimulationResult {
	r := &domain.SimulationResult{}
	for i, nw := range netWorth {
		r.YearlyData = append(r.YearlyData, domain.YearRecord{Year: i + 1, Age: startAge + i, NetWorth: d(nw)})
	}
	r.Summary.FinalNetWorth = d(netWorth[len(netWorth)-1])
	r.Summary.TotalEarned = d(earned)
	if fiAge != nil {
		r.Summary.FIAchieved = true
		r.Summary.FIAge = fiAge
	}
	return r
}

func intPtr(v int) *int { return &v }

func TestCompare_EqualNetWorthHasNoWinner(t *testing.T) {
	a := result(25, "1000", nil, "100", "200")
	b := result(25, "1000", nil, "150", "200")
	cmp, err := Compare("A", a, "B", b)
	require.NoError(t, err)
	assert.True(t, cmp.NetWorthDifference.IsZero())
	assert.Empty(t, cmp.NetWorthWinner)
	assert.True(t, cmp.LifetimeEarningsDifference.IsZero())
	assert.Equal(t, domain.FINeitherAchieved, cmp.FI.Outcome)
	assert.Empty(t, cmp.FI.Winner)
	assert.Nil(t, cmp.Crossover)
}

func TestCompare_NetWorthDirection(t *testing.T) {
	a := result(25, "5000", nil, "100", "300")
	b := result(25, "4000", nil, "120", "200")
	cmp, err := Compare("A", a, "B", b)
	require.NoError(t, err)
	assertDecimal(t, "100", cmp.NetWorthDifference)
	assertDecimal(t, "1000", cmp.LifetimeEarningsDifference)
	assert.Equal(t, "A", cmp.NetWorthWinner)
	require.Len(t, cmp.NetWorth, 2)
	assertDecimal(t, "120", cmp.NetWorth[0].Second)
	require.NotNil(t, cmp.Crossover)
	assert.Equal(t, 2, cmp.Crossover.Year)
	assert.Equal(t, "A", cmp.Crossover.Leader)

	reversed, err := Compare("B", b, "A", a)
	require.NoError(t, err)
	assertDecimal(t, "-100", reversed.NetWorthDifference)
	assert.Equal(t, "A", reversed.NetWorthWinner)
	assert.Equal(t, domain.SideSecond, reversed.NetWorthWinnerSide)
}

func TestCompare_SameNamesKeepSides(t *testing.T) {
	a := result(25, "1000", intPtr(40), "300", "100")
	b := result(25, "1000", intPtr(35), "100", "500")
	cmp, err := Compare("Plan", a, "Plan", b)
	require.NoError(t, err)

	assert.Equal(t, "Plan", cmp.NetWorthWinner)
	assert.Equal(t, domain.SideSecond, cmp.NetWorthWinnerSide)
	assert.Equal(t, domain.SideSecond, cmp.FI.WinnerSide)
	assert.Equal(t, 5, cmp.FI.YearsFaster)
	require.NotNil(t, cmp.Crossover)
	assert.Equal(t, domain.SideSecond, cmp.Crossover.LeaderSide)

	cmp, err = Compare("Plan", b, "Plan", a)
	require.NoError(t, err)
	assert.Equal(t, domain.SideFirst, cmp.NetWorthWinnerSide)
	assert.Equal(t, domain.SideFirst, cmp.FI.WinnerSide)

	tie, err := Compare("Plan", a, "Plan", a)
	require.NoError(t, err)
	assert.Empty(t, tie.NetWorthWinnerSide)
	assert.Empty(t, tie.FI.WinnerSide)
}

func TestCompare_FITieBreaks(t *testing.T) {
	tests := []struct {
		name        string
		first       *int
		second      *int
		outcome     domain.FIOutcome
		winner      string
		yearsFaster int
	}{
		{"both, first younger", intPtr(40), intPtr(45), domain.FIBothAchieved, "A", 5},
		{"both, second younger", intPtr(50), intPtr(42), domain.FIBothAchieved, "B", 8},
		{"both, same age", intPtr(44), intPtr(44), domain.FIBothAchieved, "", 0},
		{"first only", intPtr(60), nil, domain.FIFirstOnly, "A", 0},
		{"second only", nil, intPtr(60), domain.FISecondOnly, "B", 0},
		{"neither", nil, nil, domain.FINeitherAchieved, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Compare("A", result(25, "0", tt.first, "1"), "B", result(25, "0", tt.second, "1"))
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, cmp.FI.Outcome)
			assert.Equal(t, tt.winner, cmp.FI.Winner)
			assert.Equal(t, tt.yearsFaster, cmp.FI.YearsFaster)
		})
	}
}

func TestCompare_FIAchieverWinsRegardlessOfNetWorth(t *testing.T) {
	poorButFree := result(25, "100", intPtr(55), "10")
	rich := result(25, "900", nil, "1000000")
	cmp, err := Compare("Frugal", poorButFree, "Lavish", rich)
	require.NoError(t, err)
	assert.Equal(t, "Frugal", cmp.FI.Winner)
	assert.Equal(t, "Lavish", cmp.NetWorthWinner)
}

func TestCompare_Simulated(t *testing.T) {
	p := params(30, "0.03", "0.25")
	frugal := exampleScenario()
	frugal.Name = "Frugal"
	frugal.SavingsRate = d("0.6")
	a, err := Simulate(frugal, p)
	require.NoError(t, err)
	b, err := Simulate(exampleScenario(), p)
	require.NoError(t, err)

	cmp, err := Compare(frugal.Name, a, "Graduate", b)
	require.NoError(t, err)
	assert.Equal(t, "Frugal", cmp.NetWorthWinner)
	assert.Len(t, cmp.NetWorth, 30)
	assert.True(t, cmp.NetWorthDifference.Equal(a.Summary.FinalNetWorth.Sub(b.Summary.FinalNetWorth)))
}

func TestCompare_RejectsMissingResults(t *testing.T) {
	_, err := Compare("A", nil, "B", result(25, "0", nil, "1"))
	assert.Error(t, err)
	_, err = Compare("A", &domain.SimulationResult{}, "B", result(25, "0", nil, "1"))
	assert.Error(t, err)
}

func TestMilestones(t *testing.T) {
	r := result(30, "0", nil, "50000", "120000", "90000", "260000", "600000")
	thresholds := []decimal.Decimal{d("100000"), d("250000"), d("500000"), d("1000000")}

	got := Milestones(r, thresholds)
	require.Len(t, got, 3)
	assertDecimal(t, "100000", got[0].Threshold)
	assert.Equal(t, 2, got[0].Year)
	assert.Equal(t, 31, got[0].Age)
	assert.Equal(t, 4, got[1].Year)
	assert.Equal(t, 5, got[2].Year)
	assert.Equal(t, 34, got[2].Age)

	assert.Empty(t, Milestones(r, nil))
	assert.Empty(t, Milestones(r, []decimal.Decimal{d("1000000")}))
	assert.Nil(t, Milestones(nil, thresholds))
}

func TestAggregatesMatchSummary(t *testing.T) {
	res, err := Simulate(richScenario(), params(25, "0.03", "0.25"))
	require.NoError(t, err)
	agg := Aggregates(res)

	assert.True(t, agg.Earned.Equal(res.Summary.TotalEarned))
	assert.True(t, agg.Taxes.Equal(res.Summary.TotalTaxes))
	assert.True(t, agg.LivingExpenses.Equal(res.Summary.TotalLivingSpent))
	assert.True(t, agg.MajorExpenses.Equal(res.Summary.TotalMajorExpenses))
	assert.True(t, agg.DebtPaid.Equal(res.Summary.TotalDebtPaid))
	assert.True(t, agg.Saved.Equal(res.Summary.TotalSaved))
	assert.True(t, agg.Saved.Equal(agg.EmergencyFund.Add(agg.Invested)))
	assert.True(t, agg.SavingsRate.IsPositive())
}

func TestAggregates_FirstYearExample(t *testing.T) {
	res, err := Simulate(exampleScenario(), params(1, "0.03", "0.25"))
	require.NoError(t, err)
	agg := Aggregates(res)
	assertDecimal(t, "6300", agg.EmergencyFund)
	assertDecimal(t, "2940", agg.Invested)
	// 9240 / 45000
	assertDecimal(t, "20.5333", agg.SavingsRate.Round(4))
}

func TestBuildRun(t *testing.T) {
	s := exampleScenario()
	p := params(30, "0.03", "0.25")
	res, err := Simulate(s, p)
	require.NoError(t, err)
	run := BuildRun(s, p, res, DefaultMilestones)
	assert.Equal(t, s.Name, run.Scenario.Name)
	assert.Same(t, res, run.Result)
	assert.NotEmpty(t, run.Milestones)
	assert.True(t, run.Aggregates.Earned.Equal(res.Summary.TotalEarned))
}
