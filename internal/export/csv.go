// Package export writes employee records to external files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"nexquery/internal/core"
)

var csvHeader = []string{"ID", "First Name", "Last Name", "Email", "Salary", "Hire Date", "SSN", "Occupation"}

// EmployeeCSV writes a single employee record to path: the fixed header
// followed by one data row, salary formatted with two decimals.
func EmployeeCSV(emp *core.Employee, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteEmployee(f, emp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteEmployee writes the CSV header and one employee row to w.
func WriteEmployee(w io.Writer, emp *core.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := []string{
		strconv.Itoa(emp.EmpID),
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Salary.StringFixed(2),
		emp.HireDate,
		emp.SSN,
		emp.Occupation,
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
