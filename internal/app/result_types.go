package app

import (
	"github.com/shopspring/decimal"

	"nexquery/internal/core"
)

// SalaryChange is a single-employee salary preview or committed change.
type SalaryChange struct {
	Employee  core.Employee
	OldSalary decimal.Decimal
	NewSalary decimal.Decimal
}

// RangeAdjustment is the preview of a range salary adjustment: the window
// and the proposed change per selected employee.
type RangeAdjustment struct {
	Lower   decimal.Decimal
	Upper   decimal.Decimal
	Changes []SalaryChange
}

// PayHistoryResult pairs an employee with its payroll entries.
type PayHistoryResult struct {
	Employee *core.Employee
	Records  []core.PayRecord
}
