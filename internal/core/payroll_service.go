package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"nexquery/internal/db"
)

// PayrollTotal is one aggregation row: a job title or division name with
// the summed salaries of its employees.
type PayrollTotal struct {
	Label string
	Total decimal.Decimal
}

// PayRecord is one payroll history entry.
type PayRecord struct {
	PayDate  string
	Earnings decimal.Decimal
}

// PayrollService provides payroll reporting over the identity store.
type PayrollService interface {
	// ByJobTitle returns total payroll grouped by job title.
	ByJobTitle(ctx context.Context) ([]PayrollTotal, error)

	// ByDivision returns total payroll grouped by division.
	ByDivision(ctx context.Context) ([]PayrollTotal, error)

	// PayHistory returns an employee's payroll entries, newest first.
	PayHistory(ctx context.Context, empID int) ([]PayRecord, error)

	// HiredInRange returns employees whose stored hire-date string falls
	// between start and end inclusive. Dates compare as stored text, so the
	// caller must supply the stored format (YYYY-MM-DD).
	HiredInRange(ctx context.Context, start, end string) ([]Employee, error)
}

type payrollService struct {
	db db.Querier
}

// NewPayrollService constructs a PayrollService backed by PostgreSQL.
func NewPayrollService(q db.Querier) PayrollService {
	return &payrollService{db: q}
}

func (s *payrollService) ByJobTitle(ctx context.Context) ([]PayrollTotal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT jt.job_title, SUM(e.salary) AS total_payroll
		FROM employees e
		JOIN employee_job_titles ejt ON e.empid = ejt.empid
		JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id
		GROUP BY jt.job_title`)
	if err != nil {
		return nil, fmt.Errorf("payroll by job title: %w", err)
	}
	defer rows.Close()
	return scanTotals(rows)
}

func (s *payrollService) ByDivision(ctx context.Context) ([]PayrollTotal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT d.name, SUM(e.salary) AS total_payroll
		FROM employees e
		JOIN employee_division ed ON e.empid = ed.empid
		JOIN division d ON ed.div_id = d.id
		GROUP BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("payroll by division: %w", err)
	}
	defer rows.Close()
	return scanTotals(rows)
}

func (s *payrollService) PayHistory(ctx context.Context, empID int) ([]PayRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT pay_date, earnings FROM payroll
		WHERE empid = $1
		ORDER BY pay_date DESC`,
		empID,
	)
	if err != nil {
		return nil, fmt.Errorf("pay history for employee %d: %w", empID, err)
	}
	defer rows.Close()

	var records []PayRecord
	for rows.Next() {
		var rec PayRecord
		if err := rows.Scan(&rec.PayDate, &rec.Earnings); err != nil {
			return nil, fmt.Errorf("scan pay record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pay records: %w", err)
	}
	return records, nil
}

func (s *payrollService) HiredInRange(ctx context.Context, start, end string) ([]Employee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+employeeColumns+`, COALESCE(jt.job_title_id, 0), COALESCE(jt.job_title, '')
		FROM employees e
		LEFT JOIN employee_job_titles ejt ON e.empid = ejt.empid
		LEFT JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id
		WHERE e.hire_date BETWEEN $1 AND $2`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("employees hired in range: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Email,
			&emp.Salary, &emp.HireDate, &emp.SSN, &emp.JobTitleID, &emp.Occupation,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

func scanTotals(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]PayrollTotal, error) {
	var totals []PayrollTotal
	for rows.Next() {
		var t PayrollTotal
		if err := rows.Scan(&t.Label, &t.Total); err != nil {
			return nil, fmt.Errorf("scan payroll total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payroll totals: %w", err)
	}
	return totals, nil
}
