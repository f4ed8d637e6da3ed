package app

import (
	"context"

	"github.com/shopspring/decimal"

	"nexquery/internal/core"
	"nexquery/internal/export"
)

type appService struct {
	employees core.EmployeeService
	payroll   core.PayrollService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(employees core.EmployeeService, payroll core.PayrollService) ApplicationService {
	return &appService{employees: employees, payroll: payroll}
}

func (s *appService) Authenticate(ctx context.Context, req AuthRequest) (*core.Employee, error) {
	return s.employees.Authenticate(ctx, req.EmpID, req.LastName, req.HireDate, req.SSN)
}

func (s *appService) AuthenticateByPassword(ctx context.Context, empID int, password string) (*core.Employee, error) {
	return s.employees.AuthenticateByPassword(ctx, empID, password)
}

func (s *appService) ResetPassword(ctx context.Context, empID int, newPassword string) error {
	return s.employees.ResetPassword(ctx, empID, newPassword)
}

func (s *appService) GetEmployee(ctx context.Context, empID int) (*core.Employee, error) {
	return s.employees.GetByID(ctx, empID)
}

func (s *appService) ListEmployees(ctx context.Context) ([]core.Employee, error) {
	return s.employees.GetAll(ctx)
}

func (s *appService) AddEmployee(ctx context.Context, req AddEmployeeRequest) error {
	emp := &core.Employee{
		EmpID:      req.EmpID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		SSN:        req.SSN,
		Occupation: req.Occupation,
	}
	return s.employees.Add(ctx, emp)
}

func (s *appService) UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error {
	return s.employees.Update(ctx, &core.Employee{
		EmpID:     req.EmpID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Salary:    req.Salary,
	})
}

func (s *appService) DeleteEmployee(ctx context.Context, empID int) error {
	return s.employees.Delete(ctx, empID)
}

// IncreaseSalary always recomputes from the freshly fetched record, so a
// repeated preview never sees stale numbers.
func (s *appService) IncreaseSalary(ctx context.Context, empID int, pct decimal.Decimal, commit bool) (*SalaryChange, error) {
	emp, err := s.employees.GetByID(ctx, empID)
	if err != nil {
		return nil, err
	}

	change := &SalaryChange{
		Employee:  *emp,
		OldSalary: emp.Salary,
		NewSalary: core.AdjustedSalary(emp.Salary, pct),
	}
	if !commit {
		return change, nil
	}

	updated := *emp
	updated.Salary = change.NewSalary
	if err := s.employees.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return change, nil
}

func (s *appService) PreviewRangeAdjustment(ctx context.Context, lower, upper, adjustPct decimal.Decimal) (*RangeAdjustment, error) {
	selected, err := s.selectInRange(ctx, lower, upper)
	if err != nil {
		return nil, err
	}

	adj := &RangeAdjustment{Lower: lower, Upper: upper}
	for _, emp := range selected {
		adj.Changes = append(adj.Changes, SalaryChange{
			Employee:  emp,
			OldSalary: emp.Salary,
			NewSalary: core.AdjustedSalary(emp.Salary, adjustPct),
		})
	}
	return adj, nil
}

func (s *appService) ApplyRangeAdjustment(ctx context.Context, lower, upper, adjustPct decimal.Decimal) (int, error) {
	selected, err := s.selectInRange(ctx, lower, upper)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, emp := range selected {
		next := emp
		next.Salary = core.AdjustedSalary(emp.Salary, adjustPct)
		if err := s.employees.Update(ctx, &next); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *appService) PayrollByJobTitle(ctx context.Context) ([]core.PayrollTotal, error) {
	return s.payroll.ByJobTitle(ctx)
}

func (s *appService) PayrollByDivision(ctx context.Context) ([]core.PayrollTotal, error) {
	return s.payroll.ByDivision(ctx)
}

func (s *appService) PayHistory(ctx context.Context, empID int) (*PayHistoryResult, error) {
	emp, err := s.employees.GetByID(ctx, empID)
	if err != nil {
		return nil, err
	}
	records, err := s.payroll.PayHistory(ctx, empID)
	if err != nil {
		return nil, err
	}
	return &PayHistoryResult{Employee: emp, Records: records}, nil
}

func (s *appService) HiredInRange(ctx context.Context, start, end string) ([]core.Employee, error) {
	return s.payroll.HiredInRange(ctx, start, end)
}

func (s *appService) ExportEmployeeCSV(ctx context.Context, empID int, path string) error {
	emp, err := s.employees.GetByID(ctx, empID)
	if err != nil {
		return err
	}
	return export.EmployeeCSV(emp, path)
}

// selectInRange re-fetches the full employee list and filters by the
// inclusive salary window.
func (s *appService) selectInRange(ctx context.Context, lower, upper decimal.Decimal) ([]core.Employee, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return core.SelectInSalaryRange(employees, lower, upper), nil
}
