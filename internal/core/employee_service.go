package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"nexquery/internal/db"
)

// EmployeeService provides employee identity and CRUD operations.
type EmployeeService interface {
	// Authenticate matches empID, last name, hire date and SSN exactly as
	// stored, with no normalization. Returns ErrInvalidCredentials when no
	// row matches.
	Authenticate(ctx context.Context, empID int, lastName, hireDate, ssn string) (*Employee, error)

	// AuthenticateByPassword matches empID and the stored password by plain
	// equality. Returns ErrInvalidCredentials when no row matches.
	AuthenticateByPassword(ctx context.Context, empID int, password string) (*Employee, error)

	// ResetPassword stores a new password for the employee.
	ResetPassword(ctx context.Context, empID int, newPassword string) error

	// GetByID returns a single employee, or ErrNotFound.
	GetByID(ctx context.Context, empID int) (*Employee, error)

	// GetAll returns every employee in backing-store order.
	GetAll(ctx context.Context) ([]Employee, error)

	// Add inserts the employee, resolving or creating its job title, as one
	// transaction. A blank occupation fails with ErrOccupationRequired; a
	// full assignable band fails with ErrBandExhausted. On success the
	// employee's JobTitleID is populated.
	Add(ctx context.Context, emp *Employee) error

	// Update overwrites first/last name, email and salary for the
	// employee's id. Returns ErrNotFound when no row matched.
	Update(ctx context.Context, emp *Employee) error

	// Delete removes the employee row. Returns ErrNotFound when no row
	// matched. Job-title and payroll links are left in place.
	Delete(ctx context.Context, empID int) error
}

type employeeService struct {
	db    db.Querier
	bands Bands
}

// NewEmployeeService constructs an EmployeeService backed by PostgreSQL.
func NewEmployeeService(q db.Querier, bands Bands) EmployeeService {
	return &employeeService{db: q, bands: bands}
}

const employeeColumns = `e.empid, e.fname, e.lname, e.email, e.salary, e.hire_date, e.ssn`

func (s *employeeService) Authenticate(ctx context.Context, empID int, lastName, hireDate, ssn string) (*Employee, error) {
	emp := &Employee{}
	err := s.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`, jt.job_title_id, jt.job_title
		FROM employees e
		JOIN employee_job_titles ejt ON e.empid = ejt.empid
		JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id
		WHERE e.empid = $1 AND e.lname = $2 AND e.hire_date = $3 AND e.ssn = $4`,
		empID, lastName, hireDate, ssn,
	).Scan(
		&emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Salary, &emp.HireDate, &emp.SSN, &emp.JobTitleID, &emp.Occupation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate employee %d: %w", empID, err)
	}
	return emp, nil
}

func (s *employeeService) AuthenticateByPassword(ctx context.Context, empID int, password string) (*Employee, error) {
	emp := &Employee{}
	err := s.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`, jt.job_title_id, jt.job_title
		FROM employees e
		JOIN employee_job_titles ejt ON e.empid = ejt.empid
		JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id
		WHERE e.empid = $1 AND e.password = $2`,
		empID, password,
	).Scan(
		&emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Salary, &emp.HireDate, &emp.SSN, &emp.JobTitleID, &emp.Occupation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate employee %d by password: %w", empID, err)
	}
	return emp, nil
}

func (s *employeeService) ResetPassword(ctx context.Context, empID int, newPassword string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE employees SET password = $1 WHERE empid = $2`, newPassword, empID)
	if err != nil {
		return fmt.Errorf("reset password for employee %d: %w", empID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *employeeService) GetByID(ctx context.Context, empID int) (*Employee, error) {
	emp := &Employee{}
	err := s.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`, COALESCE(jt.job_title_id, 0), COALESCE(jt.job_title, '')
		FROM employees e
		LEFT JOIN employee_job_titles ejt ON e.empid = ejt.empid
		LEFT JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id
		WHERE e.empid = $1`,
		empID,
	).Scan(
		&emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Salary, &emp.HireDate, &emp.SSN, &emp.JobTitleID, &emp.Occupation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee %d: %w", empID, err)
	}
	return emp, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]Employee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+employeeColumns+`, COALESCE(jt.job_title_id, 0), COALESCE(jt.job_title, '')
		FROM employees e
		LEFT JOIN employee_job_titles ejt ON e.empid = ejt.empid
		LEFT JOIN job_titles jt ON ejt.job_title_id = jt.job_title_id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
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

func (s *employeeService) Add(ctx context.Context, emp *Employee) error {
	occupation := strings.TrimSpace(emp.Occupation)
	if occupation == "" {
		return ErrOccupationRequired
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO employees (empid, fname, lname, email, hire_date, ssn, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		emp.EmpID, emp.FirstName, emp.LastName, emp.Email,
		emp.HireDate, emp.SSN, emp.Salary,
	)
	if err != nil {
		return fmt.Errorf("insert employee %d: %w", emp.EmpID, err)
	}

	var jobTitleID int
	err = tx.QueryRow(ctx,
		`SELECT job_title_id FROM job_titles WHERE job_title = $1`, occupation,
	).Scan(&jobTitleID)
	if errors.Is(err, pgx.ErrNoRows) {
		jobTitleID, err = s.createJobTitle(ctx, tx, occupation)
		if err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("look up job title %q: %w", occupation, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO employee_job_titles (empid, job_title_id)
		VALUES ($1, $2)`,
		emp.EmpID, jobTitleID,
	)
	if err != nil {
		return fmt.Errorf("link employee %d to job title %d: %w", emp.EmpID, jobTitleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit employee insert: %w", err)
	}
	emp.JobTitleID = jobTitleID
	emp.Occupation = occupation
	return nil
}

// createJobTitle assigns the lowest unused id within the assignable band
// and inserts the new title under it.
func (s *employeeService) createJobTitle(ctx context.Context, tx pgx.Tx, occupation string) (int, error) {
	rows, err := tx.Query(ctx, `
		SELECT job_title_id FROM job_titles
		WHERE job_title_id BETWEEN $1 AND $2
		ORDER BY job_title_id`,
		s.bands.AssignMin, s.bands.AssignMax,
	)
	if err != nil {
		return 0, fmt.Errorf("scan assignable job title ids: %w", err)
	}
	defer rows.Close()

	used := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan job title id: %w", err)
		}
		used[id] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate job title ids: %w", err)
	}

	newID := s.bands.AssignMin
	for used[newID] && newID <= s.bands.AssignMax {
		newID++
	}
	if newID > s.bands.AssignMax {
		return 0, ErrBandExhausted
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO job_titles (job_title_id, job_title) VALUES ($1, $2)`,
		newID, occupation,
	)
	if err != nil {
		return 0, fmt.Errorf("insert job title %q: %w", occupation, err)
	}
	return newID, nil
}

func (s *employeeService) Update(ctx context.Context, emp *Employee) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE employees SET fname = $1, lname = $2, email = $3, salary = $4
		WHERE empid = $5`,
		emp.FirstName, emp.LastName, emp.Email, emp.Salary, emp.EmpID,
	)
	if err != nil {
		return fmt.Errorf("update employee %d: %w", emp.EmpID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *employeeService) Delete(ctx context.Context, empID int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM employees WHERE empid = $1`, empID)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", empID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
