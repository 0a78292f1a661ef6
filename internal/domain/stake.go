package domain

// Stake and allowance rules. The stake a bet locks in is fixed at placement
// time by the calendar quarter, and the monthly bet allowance is front-loaded
// into January.

// BetStakeCents returns the stake in cents for a bet placed in the given
// month (1-indexed): Q1 $1, Q2 $2, Q3 $3, Q4 $4.
func BetStakeCents(month int) int {
	switch {
	case month <= 3:
		return 100
	case month <= 6:
		return 200
	case month <= 9:
		return 300
	default:
		return 400
	}
}

// MonthlyAllowance returns how many bets a player may place in the given
// month: 16 in January, 1 in every other month. Unused bets do not roll over.
func MonthlyAllowance(month int) int {
	if month == 1 {
		return JanuaryAllowance
	}
	return DefaultAllowance
}

const (
	JanuaryAllowance = 16
	DefaultAllowance = 1
)

// RemainingBets returns the allowance left after used bets, floored at zero.
func RemainingBets(month, used int) int {
	remaining := MonthlyAllowance(month) - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
