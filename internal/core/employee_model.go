package core

import "github.com/shopspring/decimal"

// Role is derived from the job-title id band, never stored.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHRAdmin  Role = "HR_ADMIN"
)

// Bands holds the reserved job-title id ranges. Ids at or above AdminMin
// classify HR administrators; [AssignMin, AssignMax] is the pool for
// dynamically created occupations. Everything else is pre-seeded.
type Bands struct {
	AdminMin  int
	AssignMin int
	AssignMax int
}

// DefaultBands returns the standard band layout.
func DefaultBands() Bands {
	return Bands{AdminMin: 900, AssignMin: 300, AssignMax: 800}
}

// RoleFor maps a job-title id onto a role.
func (b Bands) RoleFor(jobTitleID int) Role {
	if jobTitleID >= b.AdminMin {
		return RoleHRAdmin
	}
	return RoleEmployee
}

// Employee is a person record in the identity store. The same struct backs
// both regular employees and HR administrators; the distinction lives
// entirely in JobTitleID (see Bands.RoleFor).
type Employee struct {
	EmpID      int
	FirstName  string
	LastName   string
	Email      string
	Salary     decimal.Decimal
	HireDate   string // YYYY-MM-DD, compared as stored text
	SSN        string
	Occupation string
	JobTitleID int
}

// FullName returns "First Last" for display.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RoleIn returns the employee's role under the given band layout.
func (e *Employee) RoleIn(b Bands) Role {
	return b.RoleFor(e.JobTitleID)
}
