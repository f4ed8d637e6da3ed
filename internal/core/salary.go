package core

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// SalaryBounds computes the inclusive selection window around a base
// salary: [base·(1−|pct|/100), base·(1+|pct|/100)]. The sign of pct is
// ignored, so 5 and -5 describe the same window.
func SalaryBounds(base, pct decimal.Decimal) (lower, upper decimal.Decimal) {
	frac := pct.Abs().Div(hundred)
	return base.Mul(one.Sub(frac)), base.Mul(one.Add(frac))
}

// AdjustedSalary applies a percentage change: old·(1+pct/100). Negative pct
// decreases; zero is a no-op.
func AdjustedSalary(old, pct decimal.Decimal) decimal.Decimal {
	return old.Mul(one.Add(pct.Div(hundred)))
}

// SelectInSalaryRange returns the employees whose current salary satisfies
// lower ≤ salary ≤ upper, both bounds inclusive.
func SelectInSalaryRange(employees []Employee, lower, upper decimal.Decimal) []Employee {
	var selected []Employee
	for _, emp := range employees {
		if emp.Salary.GreaterThanOrEqual(lower) && emp.Salary.LessThanOrEqual(upper) {
			selected = append(selected, emp)
		}
	}
	return selected
}
