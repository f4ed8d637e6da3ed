package app

import (
	"context"

	"github.com/shopspring/decimal"

	"nexquery/internal/core"
)

// ApplicationService is the single interface the terminal adapter calls.
// It decouples presentation from business logic. Implementations must
// contain no fmt.Println and no display logic of any kind.
type ApplicationService interface {
	// Authenticate verifies the four identity fields and returns the
	// matched employee, or core.ErrInvalidCredentials.
	Authenticate(ctx context.Context, req AuthRequest) (*core.Employee, error)

	// AuthenticateByPassword verifies empID plus stored password.
	AuthenticateByPassword(ctx context.Context, empID int, password string) (*core.Employee, error)

	// ResetPassword stores a new password for the employee.
	ResetPassword(ctx context.Context, empID int, newPassword string) error

	// GetEmployee returns a single employee, or core.ErrNotFound.
	GetEmployee(ctx context.Context, empID int) (*core.Employee, error)

	// ListEmployees returns every employee in backing-store order.
	ListEmployees(ctx context.Context) ([]core.Employee, error)

	// AddEmployee inserts a new employee with job-title resolution as a
	// single transaction.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) error

	// UpdateEmployee overwrites name, email and salary for an id.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error

	// DeleteEmployee removes the employee row.
	DeleteEmployee(ctx context.Context, empID int) error

	// IncreaseSalary re-fetches the employee and applies pct to the current
	// salary. Persists only when commit is true; either way the returned
	// change carries the fresh old/new pair for preview.
	IncreaseSalary(ctx context.Context, empID int, pct decimal.Decimal, commit bool) (*SalaryChange, error)

	// PreviewRangeAdjustment re-fetches all employees, selects those whose
	// salary lies within [lower, upper] inclusive, and returns the proposed
	// new salaries under adjustPct without persisting anything.
	PreviewRangeAdjustment(ctx context.Context, lower, upper, adjustPct decimal.Decimal) (*RangeAdjustment, error)

	// ApplyRangeAdjustment re-runs the selection against fresh data and
	// persists the adjusted salaries. Returns the number updated.
	ApplyRangeAdjustment(ctx context.Context, lower, upper, adjustPct decimal.Decimal) (int, error)

	// PayrollByJobTitle returns total payroll per job title.
	PayrollByJobTitle(ctx context.Context) ([]core.PayrollTotal, error)

	// PayrollByDivision returns total payroll per division.
	PayrollByDivision(ctx context.Context) ([]core.PayrollTotal, error)

	// PayHistory returns an employee's payroll entries newest-first,
	// together with the employee record for display.
	PayHistory(ctx context.Context, empID int) (*PayHistoryResult, error)

	// HiredInRange returns employees hired between two stored-format dates.
	HiredInRange(ctx context.Context, start, end string) ([]core.Employee, error)

	// ExportEmployeeCSV writes one employee's record to a CSV file.
	ExportEmployeeCSV(ctx context.Context, empID int, path string) error
}
