package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nexquery/internal/app"
	"nexquery/internal/core"
)

// Login runs the interactive login loop against the identity fields. It
// returns true once the session is authenticated, false when the attempt
// budget runs out.
func Login(ctx context.Context, svc app.ApplicationService, sess *core.Session, reader *bufio.Reader) bool {
	printWelcome()

	for !sess.AttemptsExhausted() {
		empID, cancelled := readInt(reader, "Enter Employee ID: ")
		if cancelled {
			return false
		}
		lastName, cancelled := readLine(reader, "Enter Last Name: ")
		if cancelled {
			return false
		}
		hireDate, cancelled := readLine(reader, "Enter Hire Date (YYYY-MM-DD): ")
		if cancelled {
			return false
		}
		ssn, cancelled := readLine(reader, "Enter SSN (xxx-xx-xxxx): ")
		if cancelled {
			return false
		}

		emp, err := svc.Authenticate(ctx, app.AuthRequest{
			EmpID:    empID,
			LastName: lastName,
			HireDate: hireDate,
			SSN:      ssn,
		})
		if err != nil {
			if !errors.Is(err, core.ErrInvalidCredentials) {
				fmt.Printf("Error: %v\n", err)
			}
			remaining, exhausted := sess.RecordFailure()
			printLoginFailure(remaining)
			if exhausted {
				fmt.Println("Maximum login attempts exceeded. Exiting...")
				return false
			}
			continue
		}

		sess.Login(emp)
		fmt.Println("\nLogin successful!")
		if sess.IsAdmin() {
			fmt.Printf("Welcome, %s. Admin View: Full Access\n\n", emp.FirstName)
		} else {
			fmt.Println("Employee View: Read Only Access")
			fmt.Println("NOTE: Only Administrators and yourself can view your information.")
			fmt.Println()
		}
		return true
	}
	return false
}

// Run drives the main menu loop until the user logs out.
func Run(ctx context.Context, svc app.ApplicationService, sess *core.Session, reader *bufio.Reader) {
	for sess.IsAuthenticated() {
		printMenu(sess.IsAdmin())
		input, _ := readLine(reader, "Select an option: ")
		choice, err := strconv.Atoi(input)
		if err != nil {
			printAccessDenied()
			continue
		}

		switch choice {
		case 0:
			fmt.Println("Logging out...")
			sess.Logout()

		case 1:
			fmt.Println("\nViewing your information...")
			printEmployeeDetail(sess.Current())
			fmt.Println()

		case 2:
			if !sess.Allowed(core.OpListEmployees) {
				printAccessDenied()
				continue
			}
			employees, err := svc.ListEmployees(ctx)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printEmployeeList(employees)

		case 3:
			if !sess.Allowed(core.OpAddEmployee) {
				printAccessDenied()
				continue
			}
			handleAdd(ctx, svc, reader)

		case 4:
			if !sess.Allowed(core.OpUpdateEmployee) {
				printAccessDenied()
				continue
			}
			handleUpdate(ctx, svc, reader)

		case 5:
			if !sess.Allowed(core.OpDeleteEmployee) {
				printAccessDenied()
				continue
			}
			handleDelete(ctx, svc, reader)

		case 6:
			if !sess.Allowed(core.OpSearchEmployee) {
				printAccessDenied()
				continue
			}
			handleSearch(ctx, svc, sess, reader)

		case 7:
			if !sess.Allowed(core.OpAdjustSalaries) {
				printAccessDenied()
				continue
			}
			handleRangeAdjustment(ctx, svc, reader)

		case 8:
			if !sess.Allowed(core.OpPayrollReports) {
				printAccessDenied()
				continue
			}
			handlePayrollSummary(ctx, svc, reader)

		case 9:
			if !sess.Allowed(core.OpResetPassword) {
				printAccessDenied()
				continue
			}
			handleResetPassword(ctx, svc, sess, reader)

		default:
			printAccessDenied()
		}
	}
}

func handlePayrollSummary(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\nPayroll Summary Generator:")
	fmt.Println("1. Total payroll by job title")
	fmt.Println("2. Total payroll by division")
	fmt.Println("3. Employee pay history")
	fmt.Println("4. Employees hired in date range")
	choice, cancelled := readLine(reader, "Enter option (1-4, or 'q' to cancel): ")
	if cancelled {
		return
	}

	switch strings.TrimSpace(choice) {
	case "1":
		totals, err := svc.PayrollByJobTitle(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printPayrollTotals("PAYROLL BY JOB TITLE", "JOB TITLE", totals)

	case "2":
		totals, err := svc.PayrollByDivision(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printPayrollTotals("PAYROLL BY DIVISION", "DIVISION", totals)

	case "3":
		empID, cancelled := readInt(reader, "Enter Employee ID: ")
		if cancelled {
			return
		}
		result, err := svc.PayHistory(ctx, empID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				fmt.Println("Employee not found.")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		printPayHistory(result)

	case "4":
		start, cancelled := readLine(reader, "Enter start date (YYYY-MM-DD): ")
		if cancelled {
			return
		}
		end, cancelled := readLine(reader, "Enter end date (YYYY-MM-DD): ")
		if cancelled {
			return
		}
		employees, err := svc.HiredInRange(ctx, start, end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printHiredInRange(start, end, employees)

	default:
		fmt.Println("Invalid summary type. Returning to menu.")
	}
}

func handleResetPassword(ctx context.Context, svc app.ApplicationService, sess *core.Session, reader *bufio.Reader) {
	fmt.Println("\nReset Password (enter 'q' to cancel):")
	password, cancelled := readLine(reader, "Enter new password: ")
	if cancelled {
		return
	}
	if password == "" {
		fmt.Println("Password unchanged.")
		return
	}
	if err := svc.ResetPassword(ctx, sess.Current().EmpID, password); err != nil {
		fmt.Printf("Failed to reset password: %v\n", err)
		return
	}
	fmt.Println("Password has been reset.")
}
