package core

// Operation names a user-facing action gated by the capability table.
type Operation string

const (
	OpViewSelf       Operation = "view-self"
	OpListEmployees  Operation = "list-employees"
	OpAddEmployee    Operation = "add-employee"
	OpUpdateEmployee Operation = "update-employee"
	OpDeleteEmployee Operation = "delete-employee"
	OpSearchEmployee Operation = "search-employee"
	OpAdjustSalaries Operation = "adjust-salaries"
	OpPayrollReports Operation = "payroll-reports"
	OpResetPassword  Operation = "reset-password"
	OpExportEmployee Operation = "export-employee"
)

// capabilities is the (role, operation) → allowed table. HR administrators
// hold every operation; regular employees hold only self-service ones.
var capabilities = map[Role]map[Operation]bool{
	RoleEmployee: {
		OpViewSelf:      true,
		OpResetPassword: true,
	},
	RoleHRAdmin: {
		OpViewSelf:       true,
		OpListEmployees:  true,
		OpAddEmployee:    true,
		OpUpdateEmployee: true,
		OpDeleteEmployee: true,
		OpSearchEmployee: true,
		OpAdjustSalaries: true,
		OpPayrollReports: true,
		OpResetPassword:  true,
		OpExportEmployee: true,
	},
}

// Session is the single authenticated-or-anonymous context for the
// process's interactive lifetime. It also tracks the session-local failed
// login counter; there is no account-level lockout.
type Session struct {
	bands       Bands
	current     *Employee
	attempts    int
	maxAttempts int
}

// NewSession returns an anonymous session with the given band layout and
// login attempt budget.
func NewSession(bands Bands, maxAttempts int) *Session {
	return &Session{bands: bands, maxAttempts: maxAttempts}
}

// Login transitions the session to Authenticated and resets the failure
// counter. The role is fixed for the lifetime of the login.
func (s *Session) Login(emp *Employee) {
	s.current = emp
	s.attempts = 0
}

// Logout returns the session to Anonymous. Nothing persists across it.
func (s *Session) Logout() {
	s.current = nil
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.current != nil
}

// Current returns the logged-in employee, or nil when anonymous.
func (s *Session) Current() *Employee {
	return s.current
}

// Role derives the current user's role from its job-title id. Anonymous
// sessions have no role.
func (s *Session) Role() Role {
	if s.current == nil {
		return ""
	}
	return s.bands.RoleFor(s.current.JobTitleID)
}

// IsAdmin reports whether the current user is an HR administrator.
func (s *Session) IsAdmin() bool {
	return s.Role() == RoleHRAdmin
}

// Allowed consults the capability table for the current role. Anonymous
// sessions are allowed nothing.
func (s *Session) Allowed(op Operation) bool {
	if s.current == nil {
		return false
	}
	return capabilities[s.Role()][op]
}

// RecordFailure increments the failed login counter and reports whether
// another attempt remains.
func (s *Session) RecordFailure() (remaining int, exhausted bool) {
	s.attempts++
	remaining = s.maxAttempts - s.attempts
	return remaining, remaining <= 0
}

// AttemptsExhausted reports whether the login budget has run out.
func (s *Session) AttemptsExhausted() bool {
	return s.attempts >= s.maxAttempts
}
