package repl

import (
	"fmt"
	"strings"

	"nexquery/internal/app"
	"nexquery/internal/core"
)

func printWelcome() {
	fmt.Println(strings.Repeat("=", 44))
	fmt.Println("  NexQuery Employee Management Portal")
	fmt.Println(strings.Repeat("=", 44))
	fmt.Println()
}

func printMenu(isAdmin bool) {
	fmt.Println(strings.Repeat("-", 44))
	fmt.Println("Main Menu:")
	fmt.Println(strings.Repeat("-", 44))
	fmt.Println("1. View My Information")
	if isAdmin {
		fmt.Println("2. View All Employees")
		fmt.Println("3. Add Employee")
		fmt.Println("4. Update Employee")
		fmt.Println("5. Delete Employee")
		fmt.Println("6. Search Employee")
		fmt.Println("7. Adjust Range of Salaries")
		fmt.Println("8. Payroll Summary")
	}
	fmt.Println("9. Reset Password")
	fmt.Println("0. Logout")
	fmt.Println(strings.Repeat("-", 44))
}

func printAccessDenied() {
	fmt.Println("\nAccess Denied!")
	fmt.Println("You do not have permission to perform this operation.")
	fmt.Println()
}

func printLoginFailure(remaining int) {
	fmt.Println("\nLogin failed!")
	fmt.Println("Invalid Employee ID, Last Name, Hire Date, or SSN.")
	if remaining > 0 {
		fmt.Printf("Attempts remaining: %d\n\n", remaining)
	}
}

func printEmployeeDetail(emp *core.Employee) {
	fmt.Printf("Employee ID: %d\n", emp.EmpID)
	fmt.Printf("Name:        %s\n", emp.FullName())
	fmt.Printf("Email:       %s\n", emp.Email)
	fmt.Printf("Salary:      $%s\n", emp.Salary.StringFixed(2))
	fmt.Printf("Hire Date:   %s\n", orNA(emp.HireDate))
	fmt.Printf("SSN:         %s\n", orNA(emp.SSN))
	fmt.Printf("Occupation:  %s\n", orNA(emp.Occupation))
}

func printEmployeeList(employees []core.Employee) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  ALL EMPLOYEES")
	fmt.Println(strings.Repeat("=", 78))
	if len(employees) == 0 {
		fmt.Println("  No employees found.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-8s %-24s %-28s %12s\n", "ID", "NAME", "EMAIL", "SALARY")
	fmt.Println(strings.Repeat("-", 78))
	for _, emp := range employees {
		fmt.Printf("  %-8d %-24s %-28s %12s\n",
			emp.EmpID, emp.FullName(), emp.Email, emp.Salary.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printPayrollTotals(title, labelHeading string, totals []core.PayrollTotal) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 48))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 48))
	if len(totals) == 0 {
		fmt.Println("  No payroll data found.")
		fmt.Println(strings.Repeat("=", 48))
		return
	}
	fmt.Printf("  %-28s %15s\n", labelHeading, "TOTAL PAYROLL")
	fmt.Println(strings.Repeat("-", 48))
	for _, t := range totals {
		fmt.Printf("  %-28s %15s\n", t.Label, t.Total.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 48))
}

func printPayHistory(result *app.PayHistoryResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 44))
	fmt.Printf("  PAY HISTORY FOR %s\n", result.Employee.FullName())
	fmt.Println(strings.Repeat("=", 44))
	if len(result.Records) == 0 {
		fmt.Println("  No payroll entries found.")
		fmt.Println(strings.Repeat("=", 44))
		return
	}
	fmt.Printf("  %-15s %15s\n", "DATE", "EARNINGS")
	fmt.Println(strings.Repeat("-", 44))
	for _, rec := range result.Records {
		fmt.Printf("  %-15s %15s\n", rec.PayDate, rec.Earnings.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 44))
}

func printHiredInRange(start, end string, employees []core.Employee) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  HIRED BETWEEN %s AND %s\n", start, end)
	fmt.Println(strings.Repeat("=", 60))
	if len(employees) == 0 {
		fmt.Println("  No employees hired in that range.")
		fmt.Println(strings.Repeat("=", 60))
		return
	}
	fmt.Printf("  %-8s %-26s %-15s\n", "ID", "NAME", "HIRE DATE")
	fmt.Println(strings.Repeat("-", 60))
	for _, emp := range employees {
		fmt.Printf("  %-8d %-26s %-15s\n", emp.EmpID, emp.FullName(), emp.HireDate)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func printAdjustmentPreview(adj *app.RangeAdjustment) {
	fmt.Println("\nEmployees to be adjusted:")
	for _, c := range adj.Changes {
		fmt.Printf("  ID: %d, Name: %s, Old Salary: $%s, New Salary: $%s\n",
			c.Employee.EmpID, c.Employee.FullName(),
			c.OldSalary.StringFixed(2), c.NewSalary.StringFixed(2))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
