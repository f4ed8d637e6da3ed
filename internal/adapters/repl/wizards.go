package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"nexquery/internal/app"
	"nexquery/internal/core"
)

// handleAdd runs the interactive add-employee wizard. Cancelling at any
// prompt abandons the whole flow without touching the store.
func handleAdd(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\nAdd New Employee (enter 'q' at any prompt to cancel):")

	empID, cancelled := readInt(reader, "Enter Employee ID: ")
	if cancelled {
		return
	}
	firstName, cancelled := readLine(reader, "Enter First Name: ")
	if cancelled {
		return
	}
	lastName, cancelled := readLine(reader, "Enter Last Name: ")
	if cancelled {
		return
	}
	email, cancelled := readLine(reader, "Enter Email: ")
	if cancelled {
		return
	}
	hireDate, cancelled := readLine(reader, "Enter Hire Date (YYYY-MM-DD): ")
	if cancelled {
		return
	}
	ssn, cancelled := readLine(reader, "Enter SSN (xxx-xx-xxxx): ")
	if cancelled {
		return
	}
	salary, cancelled := readDecimal(reader, "Enter Salary: ")
	if cancelled {
		return
	}
	occupation, cancelled := readLine(reader, "Enter Occupation/Job Title: ")
	if cancelled {
		return
	}

	err := svc.AddEmployee(ctx, app.AddEmployeeRequest{
		EmpID:      empID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		HireDate:   hireDate,
		SSN:        ssn,
		Salary:     salary,
		Occupation: occupation,
	})
	switch {
	case errors.Is(err, core.ErrOccupationRequired):
		fmt.Println("Occupation is required for a new employee. Nothing was added.")
	case errors.Is(err, core.ErrBandExhausted):
		fmt.Println("No job title id available in the assignable band. Nothing was added.")
	case err != nil:
		fmt.Printf("Failed to add employee: %v\n", err)
	default:
		fmt.Println("Employee added successfully.")
	}
	fmt.Println()
}

func handleUpdate(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\nUpdate Employee (enter 'q' at any prompt to cancel):")

	empID, cancelled := readInt(reader, "Enter Employee ID: ")
	if cancelled {
		return
	}
	firstName, cancelled := readLine(reader, "Enter First Name: ")
	if cancelled {
		return
	}
	lastName, cancelled := readLine(reader, "Enter Last Name: ")
	if cancelled {
		return
	}
	email, cancelled := readLine(reader, "Enter Email: ")
	if cancelled {
		return
	}
	salary, cancelled := readDecimal(reader, "Enter Salary: ")
	if cancelled {
		return
	}

	err := svc.UpdateEmployee(ctx, app.UpdateEmployeeRequest{
		EmpID:     empID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Salary:    salary,
	})
	switch {
	case errors.Is(err, core.ErrNotFound):
		fmt.Printf("No employee found with ID %d.\n", empID)
	case err != nil:
		fmt.Printf("Failed to update employee: %v\n", err)
	default:
		fmt.Println("Employee updated successfully.")
	}
	fmt.Println()
}

func handleDelete(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\nDelete Employee (enter 'q' to cancel):")

	empID, cancelled := readInt(reader, "Enter Employee ID: ")
	if cancelled {
		return
	}

	emp, err := svc.GetEmployee(ctx, empID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Printf("No employee found with ID %d.\n\n", empID)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	label := fmt.Sprintf("\nAre you sure you wish to delete '%s'? This action cannot be reversed. (y/n): ", emp.FirstName)
	if !confirm(reader, label) {
		fmt.Println("\nAction aborted.")
		fmt.Println()
		return
	}

	if err := svc.DeleteEmployee(ctx, empID); err != nil {
		fmt.Printf("Failed to delete employee: %v\n", err)
		return
	}
	fmt.Println("\nEmployee has been deleted successfully.")
	fmt.Println()
}

// handleSearch looks up one employee and offers an inline salary bump and
// a CSV export of the record.
func handleSearch(ctx context.Context, svc app.ApplicationService, sess *core.Session, reader *bufio.Reader) {
	fmt.Println("\nSearch Employee by ID (enter 'q' to cancel):")

	empID, cancelled := readInt(reader, "Enter Employee ID: ")
	if cancelled {
		return
	}

	emp, err := svc.GetEmployee(ctx, empID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Println("\nEmployee not found.")
			fmt.Println()
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	fmt.Println("\nEmployee Found:")
	printEmployeeDetail(emp)

	if confirm(reader, "\nWould you like to increase this employee's salary? (y/n): ") {
		handleSalaryIncrease(ctx, svc, reader, emp)
	}

	if sess.Allowed(core.OpExportEmployee) &&
		confirm(reader, "Export this record to CSV? (y/n): ") {
		path, cancelled := readLine(reader, "Enter file path: ")
		if cancelled || path == "" {
			fmt.Println("Export cancelled.")
			fmt.Println()
			return
		}
		if err := svc.ExportEmployeeCSV(ctx, empID, path); err != nil {
			fmt.Printf("Failed to export employee: %v\n", err)
		} else {
			fmt.Printf("Employee exported to %s\n", path)
		}
	}
	fmt.Println()
}

// handleSalaryIncrease previews and optionally commits a single-employee
// percentage increase. The preview is recomputed from a fresh fetch.
func handleSalaryIncrease(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, emp *core.Employee) {
	pct, cancelled := readDecimal(reader, "Enter percentage to increase salary by (e.g., 5 for 5%): ")
	if cancelled {
		fmt.Println("Salary adjustment cancelled.")
		return
	}

	preview, err := svc.IncreaseSalary(ctx, emp.EmpID, pct, false)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Original Salary:     $%s\n", preview.OldSalary.StringFixed(2))
	fmt.Printf("Proposed New Salary: $%s\n", preview.NewSalary.StringFixed(2))

	label := fmt.Sprintf("Would you like to confirm this salary adjustment for %s? (y/n): ", emp.FullName())
	if !confirm(reader, label) {
		fmt.Println("\nSalary adjustment cancelled.")
		return
	}

	if _, err := svc.IncreaseSalary(ctx, emp.EmpID, pct, true); err != nil {
		fmt.Printf("\nFailed to update salary: %v\n", err)
		return
	}
	fmt.Println("\nSalary has been updated successfully.")
}

// handleRangeAdjustment drives the two-percentage range flow: a selection
// window around a base salary, then an independent adjustment percentage
// applied to everyone inside the window. Both are re-promptable and the
// selection re-fetches on every attempt.
func handleRangeAdjustment(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\nAdjust Range of Salaries (enter 'q' at any prompt to cancel):")

	base, cancelled := readDecimal(reader, "Enter a salary to adjust (e.g., 50000): ")
	if cancelled {
		return
	}
	selPct, cancelled := readDecimal(reader, "Enter percentage for salary range (e.g., 5 for +5%/-5%): ")
	if cancelled {
		return
	}

	for {
		lower, upper := core.SalaryBounds(base, selPct)
		fmt.Printf("\nSalary range to be adjusted: $%s - $%s\n",
			lower.StringFixed(2), upper.StringFixed(2))
		if !confirm(reader, "Is this the salary range you wish to proceed with? (y/n): ") {
			selPct, cancelled = readDecimal(reader, "Re-enter percentage for salary range (e.g., 5 for +5%/-5%): ")
			if cancelled {
				fmt.Println("Returning to menu.")
				return
			}
			continue
		}

		for {
			adjPct, cancelled := readDecimal(reader, "Enter percentage to increase salaries by (e.g., 5 for 5%): ")
			if cancelled {
				fmt.Println("Returning to menu.")
				return
			}

			preview, err := svc.PreviewRangeAdjustment(ctx, lower, upper, adjPct)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(preview.Changes) == 0 {
				fmt.Println("No employees found in the selected salary range. Returning to menu.")
				return
			}

			printAdjustmentPreview(preview)
			if !confirm(reader, "\nWould you like to confirm this salary adjustment? (y/n): ") {
				fmt.Println("Enter another salary adjustment percentage.")
				continue
			}

			updated, err := svc.ApplyRangeAdjustment(ctx, lower, upper, adjPct)
			if err != nil {
				fmt.Printf("Salary adjustment FAILED after %d update(s): %v\n", updated, err)
				return
			}
			fmt.Printf("\n%d employee(s) had their salaries updated successfully.\n\n", updated)
			return
		}
	}
}
