package core_test

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"nexquery/internal/core"
)

func newPayrollService(t *testing.T) (core.PayrollService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return core.NewPayrollService(mock), mock
}

func TestPayrollService_ByJobTitle(t *testing.T) {
	t.Parallel()

	svc, mock := newPayrollService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY jt.job_title`)).
		WillReturnRows(pgxmock.NewRows([]string{"job_title", "total_payroll"}).
			AddRow("software engineer", "183000.00").
			AddRow("HR administrator", "98000.00"))

	totals, err := svc.ByJobTitle(context.Background())
	if err != nil {
		t.Fatalf("ByJobTitle returned error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d totals, want 2", len(totals))
	}
	if totals[0].Label != "software engineer" || !totals[0].Total.Equal(dec("183000")) {
		t.Errorf("totals[0] = %s %s", totals[0].Label, totals[0].Total)
	}
}

func TestPayrollService_ByDivision(t *testing.T) {
	t.Parallel()

	svc, mock := newPayrollService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY d.name`)).
		WillReturnRows(pgxmock.NewRows([]string{"name", "total_payroll"}).
			AddRow("Technology Engineering", "244000.00"))

	totals, err := svc.ByDivision(context.Background())
	if err != nil {
		t.Fatalf("ByDivision returned error: %v", err)
	}
	if len(totals) != 1 || totals[0].Label != "Technology Engineering" {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestPayrollService_ByDivision_Empty(t *testing.T) {
	t.Parallel()

	svc, mock := newPayrollService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY d.name`)).
		WillReturnRows(pgxmock.NewRows([]string{"name", "total_payroll"}))

	totals, err := svc.ByDivision(context.Background())
	if err != nil {
		t.Fatalf("ByDivision returned error: %v", err)
	}
	if len(totals) != 0 {
		t.Fatalf("got %d totals, want 0", len(totals))
	}
}

func TestPayrollService_PayHistory(t *testing.T) {
	t.Parallel()

	svc, mock := newPayrollService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY pay_date DESC`)).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"pay_date", "earnings"}).
			AddRow("2026-02-28", "5083.33").
			AddRow("2026-01-31", "5083.33"))

	records, err := svc.PayHistory(context.Background(), 2)
	if err != nil {
		t.Fatalf("PayHistory returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].PayDate != "2026-02-28" {
		t.Errorf("records[0].PayDate = %s, want newest first", records[0].PayDate)
	}
}

func TestPayrollService_HiredInRange(t *testing.T) {
	t.Parallel()

	svc, mock := newPayrollService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.hire_date BETWEEN $1 AND $2`)).
		WithArgs("2020-01-01", "2022-12-31").
		WillReturnRows(pgxmock.NewRows(employeeCols).
			AddRow(2, "Noor", "Haddad", "noor@example.com", "61000.00", "2021-06-01", "987-65-4321", 100, "software engineer"))

	employees, err := svc.HiredInRange(context.Background(), "2020-01-01", "2022-12-31")
	if err != nil {
		t.Fatalf("HiredInRange returned error: %v", err)
	}
	if len(employees) != 1 || employees[0].HireDate != "2021-06-01" {
		t.Fatalf("employees = %+v", employees)
	}
}
