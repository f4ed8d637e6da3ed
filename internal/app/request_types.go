package app

import "github.com/shopspring/decimal"

// AuthRequest carries the four identity fields checked at login.
type AuthRequest struct {
	EmpID    int
	LastName string
	HireDate string // as stored, YYYY-MM-DD
	SSN      string // as stored, xxx-xx-xxxx
}

// AddEmployeeRequest is the input for creating a new employee.
type AddEmployeeRequest struct {
	EmpID      int
	FirstName  string
	LastName   string
	Email      string
	HireDate   string
	SSN        string
	Occupation string
	Salary     decimal.Decimal
}

// UpdateEmployeeRequest overwrites the mutable fields of an employee.
type UpdateEmployeeRequest struct {
	EmpID     int
	FirstName string
	LastName  string
	Email     string
	Salary    decimal.Decimal
}
