package calculation

import (
	"github.com/lifepath/projector/internal/domain"
	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)

	// Notional 10-year amortization.
	debtRepaymentYears = decimal.NewFromInt(10)
	// Share of the remaining balance paid under DebtCurrentBalance.
	debtCurrentBalanceShare = decimal.NewFromFloat(0.1)
)

// salaryTrack carries the current salary regime across years. factor is the
// growth multiplier for the current year, carried forward rather than
// recompounded.
type salaryTrack struct {
	policy  domain.SalaryGrowthPolicy
	changes []domain.CareerChange

	salary     decimal.Decimal
	growthRate decimal.Decimal
	factor     decimal.Decimal
}

func newSalaryTrack(s *domain.Scenario, policy domain.SalaryGrowthPolicy) *salaryTrack {
	return &salaryTrack{
		policy:     policy,
		changes:    s.CareerChanges,
		salary:     s.StartingSalary,
		growthRate: s.SalaryGrowthRate,
		factor:     one,
	}
}

// advance moves the track to year y, applying every career change scheduled
// for it in list order, and returns the ones applied. Years must be visited
// in order starting at 0.
func (t *salaryTrack) advance(y int) []domain.CareerChange {
	if y > 0 {
		t.factor = t.factor.Mul(one.Add(t.growthRate))
	}
	var applied []domain.CareerChange
	for _, c := range t.changes {
		if c.Year != y {
			continue
		}
		t.salary = c.NewSalary
		t.growthRate = c.NewGrowthRate
		if t.policy == domain.SalaryGrowthRebased {
			t.factor = one
		} else {
			// from_start: the new rate compounds from year 0.
			t.factor = dec.Compound(t.growthRate, y)
		}
		applied = append(applied, c)
	}
	return applied
}

// gross is the salary for the current year.
func (t *salaryTrack) gross() decimal.Decimal {
	return t.salary.Mul(t.factor)
}

// debtSchedule is a linear, interest-free amortization.
type debtSchedule struct {
	policy   domain.DebtAmortizationPolicy
	original decimal.Decimal
	balance  decimal.Decimal
}

func newDebtSchedule(original decimal.Decimal, policy domain.DebtAmortizationPolicy) *debtSchedule {
	return &debtSchedule{policy: policy, original: original, balance: original}
}

func (d *debtSchedule) outstanding() bool { return d.balance.IsPositive() }

// pay settles this year's instalment and returns it. The balance never goes
// below zero.
func (d *debtSchedule) pay() decimal.Decimal {
	if !d.outstanding() {
		return decimal.Zero
	}
	target := d.original.Div(debtRepaymentYears)
	if d.policy == domain.DebtCurrentBalance {
		target = d.balance.Mul(debtCurrentBalanceShare)
	}
	payment := dec.Min(target, d.balance)
	d.balance = dec.FloorZero(d.balance.Sub(payment))
	return payment
}

// portfolio compounds annually at a fixed return.
type portfolio struct {
	policy  domain.InvestmentGrowthPolicy
	rate    decimal.Decimal
	balance decimal.Decimal
}

func newPortfolio(rate decimal.Decimal, policy domain.InvestmentGrowthPolicy) *portfolio {
	return &portfolio{policy: policy, rate: rate, balance: decimal.Zero}
}

// grow adds this year's contribution plus growth and returns the growth.
func (p *portfolio) grow(contribution decimal.Decimal) decimal.Decimal {
	base := p.balance
	if p.policy == domain.GrowthOnClosingBalance {
		base = base.Add(contribution)
	}
	growth := base.Mul(p.rate)
	p.balance = p.balance.Add(contribution).Add(growth)
	return growth
}
