package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"nexquery/internal/core"
	"nexquery/internal/export"
)

func sampleEmployee() *core.Employee {
	return &core.Employee{
		EmpID:      2,
		FirstName:  "Noor",
		LastName:   "Haddad",
		Email:      "noor@example.com",
		Salary:     decimal.RequireFromString("61000"),
		HireDate:   "2021-06-01",
		SSN:        "987-65-4321",
		Occupation: "software engineer",
	}
}

func TestWriteEmployee(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.WriteEmployee(&buf, sampleEmployee()); err != nil {
		t.Fatalf("WriteEmployee returned error: %v", err)
	}

	want := "ID,First Name,Last Name,Email,Salary,Hire Date,SSN,Occupation\n" +
		"2,Noor,Haddad,noor@example.com,61000.00,2021-06-01,987-65-4321,software engineer\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteEmployee_QuotesCommas(t *testing.T) {
	t.Parallel()

	emp := sampleEmployee()
	emp.Occupation = "analyst, senior"

	var buf bytes.Buffer
	if err := export.WriteEmployee(&buf, emp); err != nil {
		t.Fatalf("WriteEmployee returned error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"analyst, senior"`)) {
		t.Errorf("comma-bearing field not quoted: %q", buf.String())
	}
}

func TestEmployeeCSV_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "employee.csv")
	if err := export.EmployeeCSV(sampleEmployee(), path); err != nil {
		t.Fatalf("EmployeeCSV returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("ID,First Name")) {
		t.Errorf("exported file missing header: %q", data)
	}
}
