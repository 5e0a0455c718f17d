package calculation

import (
	"fmt"

	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// NetWorthCrossover finds the first year in which the net-worth lead between
// two aligned series changes hands. Points are compared by index; the series
// is the first/second pairing produced by Compare. Returns nil, nil when the
// lead never changes.
//
// Fraction locates the crossing by linear interpolation between the end of
// the previous year (0) and the end of the crossing year (1). A series that
// touches zero difference and then continues on the same side does not cross.
func NetWorthCrossover(firstName, secondName string, points []domain.NetWorthPoint) (*domain.Crossover, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("net worth series is empty")
	}

	var prevDiff decimal.Decimal
	leadSign := 0
	for i, p := range points {
		currDiff := p.First.Sub(p.Second)
		currSign := currDiff.Sign()

		if currSign != 0 && leadSign != 0 && currSign != leadSign {
			// Level at the previous year end means the crossing starts the year.
			fraction := decimal.Zero
			if !prevDiff.IsZero() {
				fraction = prevDiff.Div(prevDiff.Sub(currDiff))
			}
			leader, side := firstName, domain.SideFirst
			if currSign < 0 {
				leader, side = secondName, domain.SideSecond
			}
			return &domain.Crossover{Year: points[i].Year, Fraction: fraction, Leader: leader, LeaderSide: side}, nil
		}

		if currSign != 0 {
			leadSign = currSign
		}
		prevDiff = currDiff
	}
	return nil, nil
}
