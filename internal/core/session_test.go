package core_test

import (
	"testing"

	"nexquery/internal/core"
)

func TestBands_RoleFor_Boundary(t *testing.T) {
	t.Parallel()

	bands := core.DefaultBands()
	if got := bands.RoleFor(899); got != core.RoleEmployee {
		t.Errorf("RoleFor(899) = %s, want %s", got, core.RoleEmployee)
	}
	if got := bands.RoleFor(900); got != core.RoleHRAdmin {
		t.Errorf("RoleFor(900) = %s, want %s", got, core.RoleHRAdmin)
	}
	if got := bands.RoleFor(0); got != core.RoleEmployee {
		t.Errorf("RoleFor(0) = %s, want %s", got, core.RoleEmployee)
	}
}

func TestSession_Transitions(t *testing.T) {
	t.Parallel()

	sess := core.NewSession(core.DefaultBands(), 3)
	if sess.IsAuthenticated() {
		t.Fatal("new session should be anonymous")
	}
	if sess.Role() != "" {
		t.Errorf("anonymous session has role %q", sess.Role())
	}

	emp := &core.Employee{EmpID: 7, JobTitleID: 900}
	sess.Login(emp)
	if !sess.IsAuthenticated() {
		t.Fatal("session should be authenticated after Login")
	}
	if !sess.IsAdmin() {
		t.Error("job title 900 should classify as admin")
	}
	if sess.Current() != emp {
		t.Error("Current should return the logged-in employee")
	}

	sess.Logout()
	if sess.IsAuthenticated() {
		t.Fatal("session should be anonymous after Logout")
	}
}

func TestSession_Capabilities(t *testing.T) {
	t.Parallel()

	adminOnly := []core.Operation{
		core.OpListEmployees,
		core.OpAddEmployee,
		core.OpUpdateEmployee,
		core.OpDeleteEmployee,
		core.OpSearchEmployee,
		core.OpAdjustSalaries,
		core.OpPayrollReports,
		core.OpExportEmployee,
	}

	sess := core.NewSession(core.DefaultBands(), 3)
	for _, op := range adminOnly {
		if sess.Allowed(op) {
			t.Errorf("anonymous session allowed %s", op)
		}
	}

	sess.Login(&core.Employee{EmpID: 1, JobTitleID: 100})
	if !sess.Allowed(core.OpViewSelf) || !sess.Allowed(core.OpResetPassword) {
		t.Error("employee should hold self-service operations")
	}
	for _, op := range adminOnly {
		if sess.Allowed(op) {
			t.Errorf("employee role allowed %s", op)
		}
	}

	sess.Login(&core.Employee{EmpID: 2, JobTitleID: 901})
	for _, op := range adminOnly {
		if !sess.Allowed(op) {
			t.Errorf("admin role denied %s", op)
		}
	}
}

func TestSession_LoginAttempts(t *testing.T) {
	t.Parallel()

	sess := core.NewSession(core.DefaultBands(), 3)

	remaining, exhausted := sess.RecordFailure()
	if remaining != 2 || exhausted {
		t.Fatalf("first failure: remaining=%d exhausted=%v", remaining, exhausted)
	}
	remaining, exhausted = sess.RecordFailure()
	if remaining != 1 || exhausted {
		t.Fatalf("second failure: remaining=%d exhausted=%v", remaining, exhausted)
	}
	remaining, exhausted = sess.RecordFailure()
	if remaining != 0 || !exhausted {
		t.Fatalf("third failure: remaining=%d exhausted=%v", remaining, exhausted)
	}
	if !sess.AttemptsExhausted() {
		t.Error("attempts should be exhausted after three failures")
	}
}

func TestSession_LoginResetsFailureCounter(t *testing.T) {
	t.Parallel()

	sess := core.NewSession(core.DefaultBands(), 3)
	sess.RecordFailure()
	sess.RecordFailure()
	sess.Login(&core.Employee{EmpID: 1, JobTitleID: 100})
	sess.Logout()

	if sess.AttemptsExhausted() {
		t.Error("successful login should reset the failure counter")
	}
}
